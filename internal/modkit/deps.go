// Package modkit provides module wiring and core deps
package modkit

import (
	"orggate/internal/platform/config"
	"orggate/internal/platform/flags"
	"orggate/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Flags flags.Evaluator
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check optional fields like Flags
func (d Deps) ZeroOK() bool { return true }
