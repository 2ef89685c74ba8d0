// Package pipeline orchestrates batch probe runs: execute each prober in
// order, log per-capability outcomes, and report aggregate stats.
package pipeline

import (
	"context"

	"github.com/varunkalambe/speechprobe/internal/probe"
)

// Logger is the minimal logging interface needed by Run. Defined here
// (rather than importing the logging package) so that pipeline stays
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Run executes probers sequentially and returns their results with
// aggregate stats. When quiet is set (JSON output mode) nothing is logged;
// otherwise each outcome and a summary line go through log. A canceled
// context stops the run between probes.
func Run(ctx context.Context, probers []probe.Prober, log Logger, quiet bool) ([]probe.Result, RunStats) {
	stats := RunStats{Total: len(probers)}
	results := make([]probe.Result, 0, len(probers))

	for i, p := range probers {
		stats.Current = i + 1

		if ctx.Err() != nil {
			if !quiet {
				log.Warn("Interrupted")
			}
			break
		}

		if !quiet {
			log.Debug("[%d/%d] probing %s", stats.Current, stats.Total, p.Name())
		}
		res := p.Probe(ctx)
		results = append(results, res)

		if res.OK() {
			stats.Available++
			if !quiet {
				log.Success("%s: %s", p.DisplayName(), res.Version)
			}
		} else {
			stats.Unavailable++
			if !quiet {
				log.Warn("%s: %s", p.DisplayName(), res.Detail)
			}
		}
	}

	if !quiet {
		log.Info("%d/%d capabilities available", stats.Available, stats.Total)
	}
	return results, stats
}
