// Package modkit provides module wiring and core deps
package modkit

import (
	"redpen/internal/core/rulepack"
	"redpen/internal/platform/config"
	"redpen/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Rules *rulepack.Pack
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for the optional rules pack
func (d Deps) ZeroOK() bool { return true }
