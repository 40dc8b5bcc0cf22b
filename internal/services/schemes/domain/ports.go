package domain

import (
	"context"

	"orggate/internal/core/identity"
)

// ServicePort defines the service contract for schemes
type ServicePort interface {
	RemoveMember(ctx context.Context, actor identity.Actor, schemeID, organisationID string) (RemoveMemberResult, error)
}
