// Package roleconfig holds the static role and notification lookup tables
//
// The table is constructed once at startup and passed by reference; nothing
// mutates it afterwards, so it is safe to share across requests without locks
package roleconfig

import (
	"strings"

	"orggate/internal/platform/config"
	perrs "orggate/internal/platform/errors"
)

// Role describes one invitable role and its downstream identifiers
type Role struct {
	Key                  string
	ServiceRoleID        int
	PersonRoleID         int
	InvitationTemplateID string
}

// Templates names the transactional email templates the facade sends
type Templates struct {
	ProducerConfirmation         string
	ComplianceSchemeConfirmation string
	DelegatedPersonRemoved       string
	DelegatedPersonCancelled     string
	MemberDissociationRegulator  string
	MemberDissociationProducer   string
	EnrolmentDeleted             string
}

// Table is the immutable lookup surface for roles, regulators and templates
type Table struct {
	roles        map[string]Role
	producers    map[int]struct{}
	regulators   map[string]string // nation -> regulator email
	nationsOrder []string
	templates    Templates
}

// New builds a Table from already-resolved values. Inputs are copied
func New(roles []Role, producerServiceRoleIDs []int, regulators map[string]string, nations []string, t Templates) *Table {
	tbl := &Table{
		roles:        make(map[string]Role, len(roles)),
		producers:    make(map[int]struct{}, len(producerServiceRoleIDs)),
		regulators:   make(map[string]string, len(regulators)),
		nationsOrder: append([]string(nil), nations...),
		templates:    t,
	}
	for _, r := range roles {
		tbl.roles[r.Key] = r
	}
	for _, id := range producerServiceRoleIDs {
		tbl.producers[id] = struct{}{}
	}
	for n, email := range regulators {
		tbl.regulators[n] = email
	}
	return tbl
}

// Role returns the role entry for a key
func (t *Table) Role(key string) (Role, bool) {
	r, ok := t.roles[key]
	return r, ok
}

// InvitationTemplate resolves the invitation template for a role key
// A missing role or an empty template id is a request-time configuration
// failure; callers must check this before any downstream side effect
func (t *Table) InvitationTemplate(key string) (string, error) {
	r, ok := t.roles[key]
	if !ok {
		return "", perrs.Internalf("no role configured for key %q", key)
	}
	if r.InvitationTemplateID == "" {
		return "", perrs.Internalf("no invitation template configured for role %q", key)
	}
	return r.InvitationTemplateID, nil
}

// IsProducerServiceRole reports whether a service role id is a producer role
func (t *Table) IsProducerServiceRole(id int) bool {
	_, ok := t.producers[id]
	return ok
}

// RegulatorEmail returns the regulator address for one nation
func (t *Table) RegulatorEmail(nation string) (string, bool) {
	e, ok := t.regulators[nation]
	return e, ok
}

// RegulatorEmails resolves addresses for the given nations, de-duplicated
// and in input order. Nations without a configured regulator are skipped
func (t *Table) RegulatorEmails(nations ...string) []string {
	seen := make(map[string]struct{}, len(nations))
	out := make([]string, 0, len(nations))
	for _, n := range nations {
		e, ok := t.regulators[n]
		if !ok || e == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Nations returns the configured nations in declaration order
func (t *Table) Nations() []string { return append([]string(nil), t.nationsOrder...) }

// Templates returns the template id set
func (t *Table) Templates() Templates { return t.templates }

// FromConfig loads the table from the environment under the given Conf
//
// Layout (all under the caller's prefix):
//
//	ROLE_KEYS                      CSV of role keys, e.g. "ApprovedPerson,DelegatedPerson"
//	ROLE_<KEY>_SERVICE_ROLE_ID     int
//	ROLE_<KEY>_PERSON_ROLE_ID      int
//	ROLE_<KEY>_INVITE_TEMPLATE     template id (may be empty; checked at request time)
//	PRODUCER_SERVICE_ROLE_IDS      CSV of ints
//	REGULATOR_NATIONS              CSV of nations
//	REGULATOR_<NATION>_EMAIL       regulator address per nation
//	TEMPLATE_*                     template ids, see Templates
func FromConfig(cfg config.Conf) *Table {
	keys := cfg.MayCSV("ROLE_KEYS", nil)
	roles := make([]Role, 0, len(keys))
	for _, k := range keys {
		rc := cfg.Prefix("ROLE_" + envToken(k) + "_")
		roles = append(roles, Role{
			Key:                  k,
			ServiceRoleID:        rc.MayInt("SERVICE_ROLE_ID", 0),
			PersonRoleID:         rc.MayInt("PERSON_ROLE_ID", 0),
			InvitationTemplateID: rc.MayString("INVITE_TEMPLATE", ""),
		})
	}

	var producers []int
	for _, s := range cfg.MayCSV("PRODUCER_SERVICE_ROLE_IDS", nil) {
		producers = append(producers, atoiOrZero(s))
	}

	nations := cfg.MayCSV("REGULATOR_NATIONS", []string{"England", "Scotland", "Wales", "NorthernIreland"})
	regulators := make(map[string]string, len(nations))
	for _, n := range nations {
		if e := cfg.MayString("REGULATOR_"+envToken(n)+"_EMAIL", ""); e != "" {
			regulators[n] = e
		}
	}

	t := Templates{
		ProducerConfirmation:         cfg.MayString("TEMPLATE_PRODUCER_CONFIRMATION", ""),
		ComplianceSchemeConfirmation: cfg.MayString("TEMPLATE_SCHEME_CONFIRMATION", ""),
		DelegatedPersonRemoved:       cfg.MayString("TEMPLATE_DELEGATED_REMOVED", ""),
		DelegatedPersonCancelled:     cfg.MayString("TEMPLATE_DELEGATED_CANCELLED", ""),
		MemberDissociationRegulator:  cfg.MayString("TEMPLATE_DISSOCIATION_REGULATOR", ""),
		MemberDissociationProducer:   cfg.MayString("TEMPLATE_DISSOCIATION_PRODUCER", ""),
		EnrolmentDeleted:             cfg.MayString("TEMPLATE_ENROLMENT_DELETED", ""),
	}

	return New(roles, producers, regulators, nations, t)
}

// envToken uppercases a key and squashes separators so it can live in an env var name
func envToken(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ToUpper(s)
}

func atoiOrZero(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
