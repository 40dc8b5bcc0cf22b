// Package service contains account creation workflows
package service

import (
	"context"

	"orggate/internal/adapters/downstream"
	"orggate/internal/adapters/notify"
	"orggate/internal/core/identity"
	"orggate/internal/core/outcome"
	"orggate/internal/core/roleconfig"
	perrs "orggate/internal/platform/errors"
	"orggate/internal/platform/logger"
	"orggate/internal/services/accounts/domain"
)

// Service defines the service contract for accounts
type Service interface{ domain.ServicePort }

// Gateway is the slice of the accounts downstream API this service needs
type Gateway interface {
	CreateAccount(ctx context.Context, req downstream.CreateAccountRequest) (downstream.Outcome, error)
}

// Svc implements the Service interface
type Svc struct {
	gw     Gateway
	sender notify.Sender
	roles  *roleconfig.Table
	log    logger.Logger
}

// New creates a new accounts service
func New(gw Gateway, sender notify.Sender, roles *roleconfig.Table) *Svc {
	if gw == nil {
		panic("accounts.Service requires a non nil Gateway")
	}
	if roles == nil {
		panic("accounts.Service requires a non nil roleconfig table")
	}
	return &Svc{gw: gw, sender: sender, roles: roles, log: *logger.Named("accounts")}
}

// Create registers a new account downstream and sends the confirmation email
// The confirmation template is chosen purely by the compliance-scheme flag;
// a failed send never fails the creation
func (s *Svc) Create(ctx context.Context, actor identity.Actor, in domain.CreateAccountInput) (domain.CreateAccountResult, error) {
	var zero domain.CreateAccountResult

	if actor.Empty() {
		return zero, perrs.Internalf("request actor could not be established")
	}

	out, err := s.gw.CreateAccount(ctx, downstream.CreateAccountRequest{
		UserID:             actor.UserID,
		Email:              actor.Email,
		OrganisationName:   in.OrganisationName,
		ReferenceNumber:    in.ReferenceNumber,
		IsComplianceScheme: in.IsComplianceScheme,
	})
	if err != nil {
		return zero, outcome.Transport("accounts.create", err)
	}
	if err := outcome.Classify("accounts.create", out.Status, out.Body); err != nil {
		return zero, err
	}

	created, err := downstream.DecodeJSON[downstream.CreateAccountResponse]("accounts", out)
	if err != nil {
		return zero, err
	}

	s.sendConfirmation(ctx, actor, in, created)

	return domain.CreateAccountResult{
		AccountID:       created.AccountID,
		OrganisationID:  created.OrganisationID,
		ReferenceNumber: created.ReferenceNumber,
	}, nil
}

func (s *Svc) sendConfirmation(
	ctx context.Context,
	actor identity.Actor,
	in domain.CreateAccountInput,
	created downstream.CreateAccountResponse,
) {
	if s.sender == nil {
		return
	}

	tpl := s.roles.Templates().ProducerConfirmation
	if in.IsComplianceScheme {
		tpl = s.roles.Templates().ComplianceSchemeConfirmation
	}

	_, err := s.sender.Send(ctx, notify.Request{
		Recipient:  actor.Email,
		TemplateID: tpl,
		Personalisation: map[string]string{
			"organisation_name": in.OrganisationName,
			"reference_number":  created.ReferenceNumber,
		},
		Reference: notify.Ref(actor.UserID, created.OrganisationID),
	})
	if err != nil {
		s.log.Warn().
			Str("template", tpl).
			Str("organisation_id", created.OrganisationID).
			Err(err).
			Msg("account confirmation send failed")
	}
}
