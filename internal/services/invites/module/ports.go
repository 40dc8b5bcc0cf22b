package module

import (
	"context"

	"orggate/internal/adapters/notify"
	"orggate/internal/core/identity"
	"orggate/internal/core/roleconfig"
	invitesdom "orggate/internal/services/invites/domain"
	invitessvc "orggate/internal/services/invites/service"
)

// Ports carries the collaborators the invites module is constructed from
type Ports struct {
	Gateway        invitessvc.Gateway
	Sender         notify.Sender
	Roles          *roleconfig.Table
	InviteLinkBase string
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptServicePort adapts the invites service to the domain port interface
type adaptServicePort struct{ svc invitessvc.Service }

// Invite implements the domain ServicePort interface
func (a adaptServicePort) Invite(
	ctx context.Context,
	actor identity.Actor,
	in invitesdom.InviteInput,
) (invitesdom.InviteResult, error) {
	return a.svc.Invite(ctx, actor, in)
}
