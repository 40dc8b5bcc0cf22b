// Package identity holds the request-scoped actor derived from auth claims
package identity

import "github.com/google/uuid"

// Actor is the authenticated caller for one request
// Derived once from claims and never mutated afterwards
type Actor struct {
	UserID string
	Email  string
}

// Empty reports whether the actor carries no usable user id
// A missing claim and the all-zero UUID sentinel are both treated as empty;
// every mutating operation must refuse to proceed for an empty actor
func (a Actor) Empty() bool {
	if a.UserID == "" {
		return true
	}
	if id, err := uuid.Parse(a.UserID); err == nil && id == uuid.Nil {
		return true
	}
	return false
}
