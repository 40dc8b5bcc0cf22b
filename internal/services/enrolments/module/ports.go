package module

import (
	"context"

	"orggate/internal/adapters/notify"
	"orggate/internal/core/identity"
	"orggate/internal/core/roleconfig"
	enrolmentssvc "orggate/internal/services/enrolments/service"
)

// Ports carries the collaborators the enrolments module is constructed from
type Ports struct {
	Gateway enrolmentssvc.Gateway
	Persons enrolmentssvc.PersonLookup
	Orgs    enrolmentssvc.OrgLookup
	Sender  notify.Sender
	Roles   *roleconfig.Table
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptServicePort adapts the enrolments service to the domain port interface
type adaptServicePort struct{ svc enrolmentssvc.Service }

// Delete implements the domain ServicePort interface
func (a adaptServicePort) Delete(
	ctx context.Context,
	actor identity.Actor,
	enrolmentID string,
	serviceRoleID int,
) error {
	return a.svc.Delete(ctx, actor, enrolmentID, serviceRoleID)
}
