package domain

import (
	"context"

	"orggate/internal/core/identity"
)

// ServicePort defines the service contract for invites
type ServicePort interface {
	Invite(ctx context.Context, actor identity.Actor, in InviteInput) (InviteResult, error)
}
