package downstream

import (
	"context"
	"net/http"
	"net/url"
)

// Persons wraps the person service API
type Persons struct {
	c *Client
}

// NewPersons builds the persons gateway over a shared client
func NewPersons(c *Client) *Persons { return &Persons{c: c} }

// Ping implements the readiness probe
func (g *Persons) Ping(ctx context.Context) error { return g.c.Ping(ctx) }

// Person is the person detail payload used for notification contact lookups
type Person struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	OrganisationID string `json:"organisationId"`
}

// Get fetches one person by id
func (g *Persons) Get(ctx context.Context, personID string) (Outcome, error) {
	return g.c.Do(ctx, "persons.get", http.MethodGet, "/api/persons/"+url.PathEscape(personID), nil)
}

// GetByEnrolment fetches the person an enrolment belongs to
func (g *Persons) GetByEnrolment(ctx context.Context, enrolmentID string) (Outcome, error) {
	return g.c.Do(ctx, "persons.get_by_enrolment", http.MethodGet, "/api/persons/by-enrolment/"+url.PathEscape(enrolmentID), nil)
}
