package downstream

import (
	"context"
	"net/http"
	"net/url"
)

// Schemes wraps the compliance-scheme service API
type Schemes struct {
	c *Client
}

// NewSchemes builds the schemes gateway over a shared client
func NewSchemes(c *Client) *Schemes { return &Schemes{c: c} }

// Ping implements the readiness probe
func (g *Schemes) Ping(ctx context.Context) error { return g.c.Ping(ctx) }

// DissociationRecipient is one producer contact affected by a member removal
type DissociationRecipient struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
}

// RemoveMemberResponse reports the dissociated member and who to notify
type RemoveMemberResponse struct {
	OrganisationName string                  `json:"organisationName"`
	OrganisationID   string                  `json:"organisationId"`
	Nations          []string                `json:"nations"`
	Recipients       []DissociationRecipient `json:"notifyRecipients"`
}

// RemoveMember dissociates an organisation from a compliance scheme
func (g *Schemes) RemoveMember(ctx context.Context, schemeID, organisationID string) (Outcome, error) {
	path := "/api/compliance-schemes/" + url.PathEscape(schemeID) + "/members/" + url.PathEscape(organisationID)
	return g.c.Do(ctx, "schemes.remove_member", http.MethodDelete, path, nil)
}
