// Package service contains user invitation workflows
package service

import (
	"context"
	"net/url"

	"orggate/internal/adapters/downstream"
	"orggate/internal/adapters/notify"
	"orggate/internal/core/identity"
	"orggate/internal/core/outcome"
	"orggate/internal/core/roleconfig"
	perrs "orggate/internal/platform/errors"
	"orggate/internal/platform/logger"
	"orggate/internal/services/invites/domain"
)

// Service defines the service contract for invites
type Service interface{ domain.ServicePort }

// Gateway is the slice of the accounts downstream API this service needs
type Gateway interface {
	SaveInvite(ctx context.Context, req downstream.SaveInviteRequest) (downstream.Outcome, error)
}

// Svc implements the Service interface
type Svc struct {
	gw       Gateway
	sender   notify.Sender
	roles    *roleconfig.Table
	linkBase string
	log      logger.Logger
}

// New creates a new invites service
// linkBase is the front-end URL invite links are built on
func New(gw Gateway, sender notify.Sender, roles *roleconfig.Table, linkBase string) *Svc {
	if gw == nil {
		panic("invites.Service requires a non nil Gateway")
	}
	if roles == nil {
		panic("invites.Service requires a non nil roleconfig table")
	}
	return &Svc{gw: gw, sender: sender, roles: roles, linkBase: linkBase, log: *logger.Named("invites")}
}

// Invite persists a user invitation downstream and emails the invite link
// The role's invitation template is resolved before any downstream call so a
// configuration gap fails fast without side effects
func (s *Svc) Invite(ctx context.Context, actor identity.Actor, in domain.InviteInput) (domain.InviteResult, error) {
	var zero domain.InviteResult

	if actor.Empty() {
		return zero, perrs.Internalf("request actor could not be established")
	}

	tpl, err := s.roles.InvitationTemplate(in.RoleKey)
	if err != nil {
		return zero, err
	}
	role, _ := s.roles.Role(in.RoleKey)

	out, err := s.gw.SaveInvite(ctx, downstream.SaveInviteRequest{
		InvitingUserID:    actor.UserID,
		InvitingUserEmail: actor.Email,
		InvitedUserEmail:  in.InvitedUserEmail,
		OrganisationID:    in.OrganisationID,
		RoleKey:           in.RoleKey,
		ServiceRoleID:     role.ServiceRoleID,
		PersonRoleID:      role.PersonRoleID,
	})
	if err != nil {
		return zero, outcome.Transport("accounts.save_invite", err)
	}
	if err := outcome.Classify("accounts.save_invite", out.Status, out.Body); err != nil {
		return zero, err
	}

	saved, err := downstream.DecodeJSON[downstream.SaveInviteResponse]("accounts", out)
	if err != nil {
		return zero, err
	}

	s.sendInvite(ctx, actor, in, tpl, saved.InviteToken)

	return domain.InviteResult{InvitedUserEmail: in.InvitedUserEmail}, nil
}

func (s *Svc) sendInvite(ctx context.Context, actor identity.Actor, in domain.InviteInput, tpl, token string) {
	if s.sender == nil {
		return
	}

	_, err := s.sender.Send(ctx, notify.Request{
		Recipient:  in.InvitedUserEmail,
		TemplateID: tpl,
		Personalisation: map[string]string{
			"inviter_email": actor.Email,
			"invite_link":   s.linkBase + "/invite?token=" + url.QueryEscape(token),
		},
		Reference: notify.Ref(actor.UserID, in.OrganisationID),
	})
	if err != nil {
		s.log.Warn().
			Str("template", tpl).
			Str("organisation_id", in.OrganisationID).
			Err(err).
			Msg("invitation send failed")
	}
}
