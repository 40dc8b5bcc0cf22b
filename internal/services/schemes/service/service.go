// Package service contains compliance-scheme membership workflows
package service

import (
	"context"

	"orggate/internal/adapters/downstream"
	"orggate/internal/adapters/notify"
	"orggate/internal/core/identity"
	"orggate/internal/core/outcome"
	"orggate/internal/core/roleconfig"
	perrs "orggate/internal/platform/errors"
	"orggate/internal/platform/flags"
	"orggate/internal/platform/logger"
	"orggate/internal/services/schemes/domain"
)

// FlagMemberNotify gates the dissociation notifications
const FlagMemberNotify = "SCHEME_MEMBER_NOTIFY"

// Service defines the service contract for schemes
type Service interface{ domain.ServicePort }

// Gateway is the slice of the compliance-scheme downstream API this service needs
type Gateway interface {
	RemoveMember(ctx context.Context, schemeID, organisationID string) (downstream.Outcome, error)
}

// Svc implements the Service interface
type Svc struct {
	gw     Gateway
	sender notify.Sender
	roles  *roleconfig.Table
	flags  flags.Evaluator
	log    logger.Logger
}

// New creates a new schemes service
func New(gw Gateway, sender notify.Sender, roles *roleconfig.Table, fl flags.Evaluator) *Svc {
	if gw == nil {
		panic("schemes.Service requires a non nil Gateway")
	}
	if roles == nil {
		panic("schemes.Service requires a non nil roleconfig table")
	}
	if fl == nil {
		fl = flags.Static{}
	}
	return &Svc{gw: gw, sender: sender, roles: roles, flags: fl, log: *logger.Named("schemes")}
}

// RemoveMember dissociates an organisation from a compliance scheme
// With the member-notify flag enabled it fans out one regulator notice per
// distinct regulator address across the member's nations plus one producer
// notice per affected recipient; each send failure is logged on its own and
// never aborts sibling sends or the primary result
func (s *Svc) RemoveMember(
	ctx context.Context,
	actor identity.Actor,
	schemeID, organisationID string,
) (domain.RemoveMemberResult, error) {
	var zero domain.RemoveMemberResult

	if actor.Empty() {
		return zero, perrs.Internalf("request actor could not be established")
	}
	if schemeID == "" || organisationID == "" {
		return zero, perrs.Validationf("scheme id and organisation id are required")
	}

	out, err := s.gw.RemoveMember(ctx, schemeID, organisationID)
	if err != nil {
		return zero, outcome.Transport("schemes.remove_member", err)
	}
	if err := outcome.Classify("schemes.remove_member", out.Status, out.Body); err != nil {
		return zero, err
	}

	removed, err := downstream.DecodeJSON[downstream.RemoveMemberResponse]("schemes", out)
	if err != nil {
		return zero, err
	}

	if s.flags.Enabled(FlagMemberNotify) {
		s.notifyDissociation(ctx, actor, removed)
	}

	return domain.RemoveMemberResult{
		OrganisationID:   removed.OrganisationID,
		OrganisationName: removed.OrganisationName,
	}, nil
}

func (s *Svc) notifyDissociation(ctx context.Context, actor identity.Actor, removed downstream.RemoveMemberResponse) {
	if s.sender == nil {
		return
	}
	ref := notify.Ref(actor.UserID, removed.OrganisationID)

	regTpl := s.roles.Templates().MemberDissociationRegulator
	for _, addr := range s.roles.RegulatorEmails(removed.Nations...) {
		if _, err := s.sender.Send(ctx, notify.Request{
			Recipient:  addr,
			TemplateID: regTpl,
			Personalisation: map[string]string{
				"organisation_name": removed.OrganisationName,
			},
			Reference: ref,
		}); err != nil {
			s.log.Warn().Str("recipient", addr).Err(err).Msg("regulator dissociation notice failed")
		}
	}

	prodTpl := s.roles.Templates().MemberDissociationProducer
	for _, rcp := range removed.Recipients {
		if _, err := s.sender.Send(ctx, notify.Request{
			Recipient:  rcp.Email,
			TemplateID: prodTpl,
			Personalisation: map[string]string{
				"first_name":        rcp.FirstName,
				"organisation_name": removed.OrganisationName,
			},
			Reference: ref,
		}); err != nil {
			s.log.Warn().Str("recipient", rcp.Email).Err(err).Msg("producer dissociation notice failed")
		}
	}
}
