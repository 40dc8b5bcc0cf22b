package downstream

import (
	"context"
	"net/http"
	"net/url"
)

// RoleMgmt wraps the role-management service API
type RoleMgmt struct {
	c *Client
}

// NewRoleMgmt builds the role-management gateway over a shared client
func NewRoleMgmt(c *Client) *RoleMgmt { return &RoleMgmt{c: c} }

// Ping implements the readiness probe
func (g *RoleMgmt) Ping(ctx context.Context) error { return g.c.Ping(ctx) }

// RemovedServiceRole is one role the update stripped from the person,
// tagged with the status it held before removal
type RemovedServiceRole struct {
	Key    string `json:"key"`
	Status string `json:"status"` // Approved, Pending, Nominated
}

// UpdatePersonRolesRequest replaces a person's service roles
type UpdatePersonRolesRequest struct {
	OrganisationID string `json:"organisationId"`
	ServiceRoleIDs []int  `json:"serviceRoleIds"`
}

// UpdatePersonRolesResponse reports what the update removed
type UpdatePersonRolesResponse struct {
	RemovedServiceRoles []RemovedServiceRole `json:"removedServiceRoles"`
}

// UpdatePersonRoles replaces the person's roles and reports removals
func (g *RoleMgmt) UpdatePersonRoles(ctx context.Context, personID string, req UpdatePersonRolesRequest) (Outcome, error) {
	return g.c.Do(ctx, "rolemgmt.update_roles", http.MethodPut, "/api/persons/"+url.PathEscape(personID)+"/roles", req)
}
