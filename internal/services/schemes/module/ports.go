package module

import (
	"context"

	"orggate/internal/adapters/notify"
	"orggate/internal/core/identity"
	"orggate/internal/core/roleconfig"
	schemesdom "orggate/internal/services/schemes/domain"
	schemessvc "orggate/internal/services/schemes/service"
)

// Ports carries the collaborators the schemes module is constructed from
type Ports struct {
	Gateway schemessvc.Gateway
	Sender  notify.Sender
	Roles   *roleconfig.Table
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptServicePort adapts the schemes service to the domain port interface
type adaptServicePort struct{ svc schemessvc.Service }

// RemoveMember implements the domain ServicePort interface
func (a adaptServicePort) RemoveMember(
	ctx context.Context,
	actor identity.Actor,
	schemeID, organisationID string,
) (schemesdom.RemoveMemberResult, error) {
	return a.svc.RemoveMember(ctx, actor, schemeID, organisationID)
}
