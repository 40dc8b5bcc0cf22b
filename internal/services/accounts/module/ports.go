package module

import (
	"context"

	"orggate/internal/adapters/notify"
	"orggate/internal/core/identity"
	"orggate/internal/core/roleconfig"
	accountsdom "orggate/internal/services/accounts/domain"
	accountssvc "orggate/internal/services/accounts/service"
)

// Ports carries the collaborators the accounts module is constructed from
type Ports struct {
	Gateway accountssvc.Gateway
	Sender  notify.Sender
	Roles   *roleconfig.Table
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptServicePort adapts the accounts service to the domain port interface
type adaptServicePort struct{ svc accountssvc.Service }

// Create implements the domain ServicePort interface
func (a adaptServicePort) Create(
	ctx context.Context,
	actor identity.Actor,
	in accountsdom.CreateAccountInput,
) (accountsdom.CreateAccountResult, error) {
	return a.svc.Create(ctx, actor, in)
}
