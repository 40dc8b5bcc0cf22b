// Package domain holds DTOs for roles http and service contracts
package domain

// UpdateRolesInput replaces a person's service roles
type UpdateRolesInput struct {
	OrganisationID string `json:"organisation_id" validate:"required,uuid4" example:"3b5c0c62-55e8-4b6a-9c7e-0d6f2a9b1c11"`
	ServiceRoleIDs []int  `json:"service_role_ids" validate:"required,min=1,dive,min=1" example:"1,2"`
}

// RemovedRole is one role the update removed, with its prior status
type RemovedRole struct {
	Key    string `json:"key"`
	Status string `json:"status"`
}

// UpdateRolesResult reports what the update removed
type UpdateRolesResult struct {
	RemovedRoles []RemovedRole `json:"removed_roles"`
}
