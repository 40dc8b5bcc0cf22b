// Package service contains person role update workflows
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
	"orggate/internal/services/roles/domain"
)

// delegatedPersonKey is the role whose removal triggers a notice to the person
const delegatedPersonKey = "Delegated Person"

// Service defines the service contract for roles
type Service interface{ domain.ServicePort }

// Gateway is the slice of the role-management downstream API this service needs
type Gateway interface {
	UpdatePersonRoles(ctx context.Context, personID string, req downstream.UpdatePersonRolesRequest) (downstream.Outcome, error)
}

// PersonLookup fetches contact details for notification recipients
type PersonLookup interface {
	Get(ctx context.Context, personID string) (downstream.Outcome, error)
}

// Svc implements the Service interface
type Svc struct {
	gw      Gateway
	persons PersonLookup
	sender  notify.Sender
	roles   *roleconfig.Table
	log     logger.Logger
}

// New creates a new roles service
func New(gw Gateway, persons PersonLookup, sender notify.Sender, roles *roleconfig.Table) *Svc {
	if gw == nil {
		panic("roles.Service requires a non nil Gateway")
	}
	if roles == nil {
		panic("roles.Service requires a non nil roleconfig table")
	}
	return &Svc{gw: gw, persons: persons, sender: sender, roles: roles, log: *logger.Named("roles")}
}

// Update replaces the person's roles downstream and reports what was removed
// When a Delegated Person role is among the removals the person is notified;
// the template depends on the status the role held before removal
func (s *Svc) Update(
	ctx context.Context,
	actor identity.Actor,
	personID string,
	in domain.UpdateRolesInput,
) (domain.UpdateRolesResult, error) {
	var zero domain.UpdateRolesResult

	if actor.Empty() {
		return zero, perrs.Internalf("request actor could not be established")
	}
	if personID == "" {
		return zero, perrs.Validationf("person id is required")
	}

	out, err := s.gw.UpdatePersonRoles(ctx, personID, downstream.UpdatePersonRolesRequest{
		OrganisationID: in.OrganisationID,
		ServiceRoleIDs: in.ServiceRoleIDs,
	})
	if err != nil {
		return zero, outcome.Transport("rolemgmt.update_roles", err)
	}
	if err := outcome.Classify("rolemgmt.update_roles", out.Status, out.Body); err != nil {
		return zero, err
	}

	updated, err := downstream.DecodeJSON[downstream.UpdatePersonRolesResponse]("rolemgmt", out)
	if err != nil {
		return zero, err
	}

	res := domain.UpdateRolesResult{RemovedRoles: make([]domain.RemovedRole, 0, len(updated.RemovedServiceRoles))}
	for _, r := range updated.RemovedServiceRoles {
		res.RemovedRoles = append(res.RemovedRoles, domain.RemovedRole{Key: r.Key, Status: r.Status})
	}

	s.maybeNotifyRemoval(ctx, actor, personID, in.OrganisationID, updated.RemovedServiceRoles)

	return res, nil
}

// maybeNotifyRemoval sends the delegated-person notice when the preconditions hold
// A missing person record skips the notice; the primary result already stands
func (s *Svc) maybeNotifyRemoval(
	ctx context.Context,
	actor identity.Actor,
	personID, organisationID string,
	removed []downstream.RemovedServiceRole,
) {
	if s.sender == nil || s.persons == nil {
		return
	}

	tpl := ""
	for _, r := range removed {
		if r.Key != delegatedPersonKey {
			continue
		}
		switch r.Status {
		case "Approved":
			tpl = s.roles.Templates().DelegatedPersonRemoved
		case "Pending", "Nominated":
			tpl = s.roles.Templates().DelegatedPersonCancelled
		}
		break
	}
	if tpl == "" {
		return
	}

	out, err := s.persons.Get(ctx, personID)
	if err != nil {
		s.log.Warn().Str("person_id", personID).Err(err).Msg("person lookup failed, removal notice skipped")
		return
	}
	if err := outcome.Classify("persons.get", out.Status, out.Body); err != nil {
		s.log.Warn().Str("person_id", personID).Err(err).Msg("person lookup miss, removal notice skipped")
		return
	}
	person, err := downstream.DecodeJSON[downstream.Person]("persons", out)
	if err != nil {
		s.log.Warn().Str("person_id", personID).Err(err).Msg("person decode failed, removal notice skipped")
		return
	}

	if _, err := s.sender.Send(ctx, notify.Request{
		Recipient:  person.Email,
		TemplateID: tpl,
		Personalisation: map[string]string{
			"first_name": person.FirstName,
		},
		Reference: notify.Ref(actor.UserID, organisationID),
	}); err != nil {
		s.log.Warn().Str("template", tpl).Str("person_id", personID).Err(err).Msg("removal notice send failed")
	}
}
