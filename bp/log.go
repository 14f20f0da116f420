// SPDX-License-Identifier: MIT

// Verbose-gated diagnostics, mirroring bp.cpp's cout output gated by
// Verbose(). verbose>=1 logs start/convergence at Info, verbose>=3 logs
// per-sweep residual/maxdiff at Debug; non-convergence is always a Warn
// regardless of verbosity.
package bp

import "go.uber.org/zap"

func (b *BP) logStart() {
	if b.opts.verbose < 1 {
		return
	}
	b.opts.logger.Info("bp: starting run",
		zap.String("updates", b.opts.updates.String()),
		zap.Float64("tol", b.opts.tol),
		zap.Int("maxiter", b.opts.maxIter),
		zap.Bool("logdomain", b.opts.logDomain),
	)
}

func (b *BP) logSweep(iter int) {
	if b.opts.verbose < 3 {
		return
	}
	b.opts.logger.Debug("bp: sweep done",
		zap.Int("iter", iter),
		zap.Float64("maxdiff", b.maxDiff),
	)
}

func (b *BP) logDone() {
	if b.maxDiff > b.opts.tol {
		b.opts.logger.Warn("bp: did not converge",
			zap.Float64("maxdiff", b.maxDiff),
			zap.Float64("tol", b.opts.tol),
		)

		return
	}
	if b.opts.verbose < 1 {
		return
	}
	b.opts.logger.Info("bp: converged", zap.Float64("maxdiff", b.maxDiff))
}
