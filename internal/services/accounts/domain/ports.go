package domain

import (
	"context"

	"orggate/internal/core/identity"
)

// ServicePort defines the service contract for accounts
type ServicePort interface {
	Create(ctx context.Context, actor identity.Actor, in CreateAccountInput) (CreateAccountResult, error)
}
