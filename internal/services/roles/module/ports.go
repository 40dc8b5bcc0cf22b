package module

import (
	"context"

	"orggate/internal/adapters/notify"
	"orggate/internal/core/identity"
	"orggate/internal/core/roleconfig"
	rolesdom "orggate/internal/services/roles/domain"
	rolessvc "orggate/internal/services/roles/service"
)

// Ports carries the collaborators the roles module is constructed from
type Ports struct {
	Gateway rolessvc.Gateway
	Persons rolessvc.PersonLookup
	Sender  notify.Sender
	Roles   *roleconfig.Table
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptServicePort adapts the roles service to the domain port interface
type adaptServicePort struct{ svc rolessvc.Service }

// Update implements the domain ServicePort interface
func (a adaptServicePort) Update(
	ctx context.Context,
	actor identity.Actor,
	personID string,
	in rolesdom.UpdateRolesInput,
) (rolesdom.UpdateRolesResult, error) {
	return a.svc.Update(ctx, actor, personID, in)
}
