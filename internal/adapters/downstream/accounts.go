package downstream

import (
	"context"
	"net/http"
)

// Accounts wraps the account service API
type Accounts struct {
	c *Client
}

// NewAccounts builds the accounts gateway over a shared client
func NewAccounts(c *Client) *Accounts { return &Accounts{c: c} }

// Ping implements the readiness probe
func (g *Accounts) Ping(ctx context.Context) error { return g.c.Ping(ctx) }

// CreateAccountRequest is the account creation payload
type CreateAccountRequest struct {
	UserID             string `json:"userId"`
	Email              string `json:"email"`
	OrganisationName   string `json:"organisationName"`
	ReferenceNumber    string `json:"referenceNumber,omitempty"`
	IsComplianceScheme bool   `json:"isComplianceScheme"`
}

// CreateAccountResponse is the account creation result payload
type CreateAccountResponse struct {
	AccountID       string `json:"accountId"`
	OrganisationID  string `json:"organisationId"`
	ReferenceNumber string `json:"referenceNumber"`
}

// CreateAccount registers a new producer or compliance-scheme account
func (g *Accounts) CreateAccount(ctx context.Context, req CreateAccountRequest) (Outcome, error) {
	return g.c.Do(ctx, "accounts.create", http.MethodPost, "/api/accounts", req)
}

// SaveInviteRequest is the user invitation payload
type SaveInviteRequest struct {
	InvitingUserID    string `json:"invitingUserId"`
	InvitingUserEmail string `json:"invitingUserEmail"`
	InvitedUserEmail  string `json:"invitedUserEmail"`
	OrganisationID    string `json:"organisationId"`
	RoleKey           string `json:"roleKey"`
	ServiceRoleID     int    `json:"serviceRoleId"`
	PersonRoleID      int    `json:"personRoleId"`
}

// SaveInviteResponse carries the invite token used to build the invite link
type SaveInviteResponse struct {
	InviteToken string `json:"inviteToken"`
}

// SaveInvite persists a user invitation
func (g *Accounts) SaveInvite(ctx context.Context, req SaveInviteRequest) (Outcome, error) {
	return g.c.Do(ctx, "accounts.save_invite", http.MethodPost, "/api/accounts-management/invite-user", req)
}
