// SPDX-License-Identifier: MIT

// Package xlog builds the zap.Logger BP's WithLogger option installs,
// mapping a single verbosity integer (spec §6's "verbose" property) onto a
// zap level the way cmd/bpsolve's --verbose flag and internal/config's "verbose"
// property both need to agree on.
package xlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a development-style zap.Logger (colored level, short caller,
// console encoding) at the level verbose selects:
//
//	verbose <= 0: zapcore.WarnLevel (only non-convergence warnings)
//	verbose == 1 or 2: zapcore.InfoLevel (start/converged)
//	verbose >= 3: zapcore.DebugLevel (per-sweep residual/maxdiff)
func New(verbose int) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(levelFor(verbose))
	cfg.EncoderConfig.TimeKey = ""

	return cfg.Build()
}

func levelFor(verbose int) zapcore.Level {
	switch {
	case verbose >= 3:
		return zapcore.DebugLevel
	case verbose >= 1:
		return zapcore.InfoLevel
	default:
		return zapcore.WarnLevel
	}
}
