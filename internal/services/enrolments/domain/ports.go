// Package domain holds the service contract for enrolments
package domain

import (
	"context"

	"orggate/internal/core/identity"
)

// ServicePort defines the service contract for enrolments
type ServicePort interface {
	Delete(ctx context.Context, actor identity.Actor, enrolmentID string, serviceRoleID int) error
}
