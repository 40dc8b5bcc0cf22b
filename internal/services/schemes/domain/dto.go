// Package domain holds DTOs for schemes http and service contracts
package domain

// RemoveMemberResult reports the dissociated organisation
type RemoveMemberResult struct {
	OrganisationID   string `json:"organisation_id"`
	OrganisationName string `json:"organisation_name"`
}
