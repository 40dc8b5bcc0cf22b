// Package service contains enrolment deletion workflows
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
	"orggate/internal/services/enrolments/domain"
)

// Service defines the service contract for enrolments
type Service interface{ domain.ServicePort }

// Gateway is the slice of the enrolment downstream API this service needs
type Gateway interface {
	Delete(ctx context.Context, enrolmentID string, serviceRoleID int) (downstream.Outcome, error)
}

// PersonLookup resolves the person an enrolment belonged to
type PersonLookup interface {
	GetByEnrolment(ctx context.Context, enrolmentID string) (downstream.Outcome, error)
}

// OrgLookup resolves the organisation named in the deletion notice
type OrgLookup interface {
	Get(ctx context.Context, id string) (downstream.Outcome, error)
}

// Svc implements the Service interface
type Svc struct {
	gw      Gateway
	persons PersonLookup
	orgs    OrgLookup
	sender  notify.Sender
	roles   *roleconfig.Table
	log     logger.Logger
}

// New creates a new enrolments service
func New(gw Gateway, persons PersonLookup, orgs OrgLookup, sender notify.Sender, roles *roleconfig.Table) *Svc {
	if gw == nil {
		panic("enrolments.Service requires a non nil Gateway")
	}
	if roles == nil {
		panic("enrolments.Service requires a non nil roleconfig table")
	}
	return &Svc{gw: gw, persons: persons, orgs: orgs, sender: sender, roles: roles, log: *logger.Named("enrolments")}
}

// Delete removes one enrolment downstream
// Only producer-role deletions are announced; the person and organisation
// lookups feeding the notice are secondary and their misses are logged, not
// surfaced — the deletion already happened
func (s *Svc) Delete(ctx context.Context, actor identity.Actor, enrolmentID string, serviceRoleID int) error {
	if actor.Empty() {
		return perrs.Internalf("request actor could not be established")
	}
	if enrolmentID == "" {
		return perrs.Validationf("enrolment id is required")
	}
	if serviceRoleID <= 0 {
		return perrs.Validationf("service role id is required")
	}

	out, err := s.gw.Delete(ctx, enrolmentID, serviceRoleID)
	if err != nil {
		return outcome.Transport("enrolments.delete", err)
	}
	if err := outcome.Classify("enrolments.delete", out.Status, out.Body); err != nil {
		return err
	}

	if s.roles.IsProducerServiceRole(serviceRoleID) {
		s.notifyDeletion(ctx, actor, enrolmentID)
	}

	return nil
}

func (s *Svc) notifyDeletion(ctx context.Context, actor identity.Actor, enrolmentID string) {
	if s.sender == nil || s.persons == nil {
		return
	}

	pout, err := s.persons.GetByEnrolment(ctx, enrolmentID)
	if err != nil {
		s.log.Warn().Str("enrolment_id", enrolmentID).Err(err).Msg("person lookup failed, deletion notice skipped")
		return
	}
	if err := outcome.Classify("persons.get_by_enrolment", pout.Status, pout.Body); err != nil {
		s.log.Warn().Str("enrolment_id", enrolmentID).Err(err).Msg("person lookup miss, deletion notice skipped")
		return
	}
	person, err := downstream.DecodeJSON[downstream.Person]("persons", pout)
	if err != nil {
		s.log.Warn().Str("enrolment_id", enrolmentID).Err(err).Msg("person decode failed, deletion notice skipped")
		return
	}

	orgName := ""
	if s.orgs != nil && person.OrganisationID != "" {
		oout, err := s.orgs.Get(ctx, person.OrganisationID)
		if err == nil && outcome.Classify("organisations.get", oout.Status, oout.Body) == nil {
			if org, derr := downstream.DecodeJSON[downstream.Organisation]("organisations", oout); derr == nil {
				orgName = org.Name
			}
		}
		if orgName == "" {
			s.log.Warn().Str("organisation_id", person.OrganisationID).Msg("organisation lookup miss, notice sent without name")
		}
	}

	if _, err := s.sender.Send(ctx, notify.Request{
		Recipient:  person.Email,
		TemplateID: s.roles.Templates().EnrolmentDeleted,
		Personalisation: map[string]string{
			"first_name":        person.FirstName,
			"organisation_name": orgName,
		},
		Reference: notify.Ref(actor.UserID, person.OrganisationID),
	}); err != nil {
		s.log.Warn().Str("enrolment_id", enrolmentID).Err(err).Msg("deletion notice send failed")
	}
}
