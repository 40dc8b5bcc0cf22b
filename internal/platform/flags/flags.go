// Package flags provides feature flag evaluation backed by configuration
package flags

import (
	"strings"
	"sync"

	"orggate/internal/platform/config"
)

// Evaluator answers whether a named feature flag is enabled
// Implementations must be safe for concurrent use
type Evaluator interface {
	Enabled(name string) bool
}

// Env evaluates flags from FLAG_* environment variables via config.Conf
// Values are read once per flag and cached for the process lifetime,
// so a flag cannot flip between checks within one request
type Env struct {
	cfg config.Conf

	mu   sync.RWMutex
	seen map[string]bool
}

// FromConfig builds an Env evaluator scoped under the FLAG_ prefix
func FromConfig(cfg config.Conf) *Env {
	return &Env{cfg: cfg.Prefix("FLAG_"), seen: make(map[string]bool)}
}

// Enabled reports whether the flag is on. Unknown flags are off
func (e *Env) Enabled(name string) bool {
	key := strings.ToUpper(name)

	e.mu.RLock()
	v, ok := e.seen[key]
	e.mu.RUnlock()
	if ok {
		return v
	}

	v = e.cfg.MayBool(key, false)

	e.mu.Lock()
	e.seen[key] = v
	e.mu.Unlock()
	return v
}

// Static is a fixed flag set for tests and defaults
type Static map[string]bool

// Enabled implements Evaluator
func (s Static) Enabled(name string) bool { return s[strings.ToUpper(name)] }
