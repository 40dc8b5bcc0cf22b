package domain

import (
	"context"

	"orggate/internal/core/identity"
)

// ServicePort defines the service contract for roles
type ServicePort interface {
	Update(ctx context.Context, actor identity.Actor, personID string, in UpdateRolesInput) (UpdateRolesResult, error)
}
