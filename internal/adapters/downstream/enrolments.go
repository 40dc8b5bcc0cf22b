package downstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Enrolments wraps the enrolment service API
type Enrolments struct {
	c *Client
}

// NewEnrolments builds the enrolments gateway over a shared client
func NewEnrolments(c *Client) *Enrolments { return &Enrolments{c: c} }

// Ping implements the readiness probe
func (g *Enrolments) Ping(ctx context.Context) error { return g.c.Ping(ctx) }

// Delete removes one enrolment; the service role id rides along so the
// downstream can audit which role the enrolment carried
func (g *Enrolments) Delete(ctx context.Context, enrolmentID string, serviceRoleID int) (Outcome, error) {
	q := url.Values{}
	q.Set("serviceRoleId", strconv.Itoa(serviceRoleID))
	path := "/api/enrolments/" + url.PathEscape(enrolmentID) + "?" + q.Encode()
	return g.c.Do(ctx, "enrolments.delete", http.MethodDelete, path, nil)
}
