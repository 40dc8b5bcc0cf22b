// Package domain holds DTOs for accounts http and service contracts
package domain

// CreateAccountInput is the account creation request body
type CreateAccountInput struct {
	OrganisationName   string `json:"organisation_name" validate:"required,min=1,max=200" example:"Acme Packaging Ltd"`
	ReferenceNumber    string `json:"reference_number,omitempty" validate:"omitempty,max=50" example:"REF-0042"`
	IsComplianceScheme bool   `json:"is_compliance_scheme" example:"false"`
}

// CreateAccountResult is returned to the front-end after creation
type CreateAccountResult struct {
	AccountID       string `json:"account_id"`
	OrganisationID  string `json:"organisation_id"`
	ReferenceNumber string `json:"reference_number"`
}
