// Package domain holds DTOs for invites http and service contracts
package domain

// InviteInput is the invite-user request body
type InviteInput struct {
	InvitedUserEmail string `json:"invited_user_email" validate:"required,email" example:"new.user@acme.com"`
	OrganisationID   string `json:"organisation_id" validate:"required,uuid4" example:"3b5c0c62-55e8-4b6a-9c7e-0d6f2a9b1c11"`
	RoleKey          string `json:"role_key" validate:"required,min=1,max=100" example:"DelegatedPerson"`
}

// InviteResult confirms who was invited
type InviteResult struct {
	InvitedUserEmail string `json:"invited_user_email"`
}
