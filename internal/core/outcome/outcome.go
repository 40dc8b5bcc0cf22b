// Package outcome classifies downstream HTTP results into project errors
//
// This is the single place raw downstream statuses (and the handful of known
// error-body phrases) are interpreted. Orchestration code never branches on a
// status code directly; it calls Classify and propagates the result
package outcome

import (
	"strings"

	perrs "orggate/internal/platform/errors"
)

// refinement maps an exact, case-sensitive phrase inside a 400 body to a
// specific validation message. The phrases are a string contract with the
// downstream services and must not be normalized or fuzzed
type refinement struct {
	fragment string
	message  string
}

var refinements = []refinement{
	{fragment: "already invited", message: "user is already invited"},
	{fragment: "enrolled already", message: "user is enrolled already"},
	{fragment: "doesn't belong to the same organisation", message: "person doesn't belong to the same organisation"},
}

// Classify maps one downstream status code and body to a project error
// nil means the call succeeded (200 or 204). Every other status maps to
// exactly one non-nil error; codes the facade does not recognize collapse
// to a downstream (500-class) error rather than being assumed safe
func Classify(op string, status int, body []byte) error {
	switch status {
	case 200, 204:
		return nil
	case 400:
		return perrs.WithOp(refine(body), op)
	case 403:
		return perrs.WithOp(perrs.Forbiddenf("downstream rejected the caller"), op)
	case 404:
		return perrs.WithOp(perrs.NotFoundf("downstream resource not found"), op)
	default:
		// 409 and unmapped 4xx are escalated on purpose, same as 5xx
		return perrs.WithOp(perrs.Downstreamf("downstream returned status %d", status), op)
	}
}

// Transport wraps a transport-level failure (no response at all) so it lands
// in the same 500-class bucket as an unrecognized status
func Transport(op string, err error) error {
	return perrs.WithOp(perrs.Wrap(err, perrs.ErrorCodeDownstream, "downstream call failed"), op)
}

func refine(body []byte) error {
	s := string(body)
	for _, r := range refinements {
		if strings.Contains(s, r.fragment) {
			return perrs.Validationf("%s", r.message)
		}
	}
	return perrs.Validationf("downstream rejected the request")
}
