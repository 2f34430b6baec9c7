// Package diag aggregates validation diagnostics across a build and
// applies the license reporting policy: strict escalation, individual
// warnings, and end-of-build summaries.
package diag

import (
	"fmt"

	"github.com/teachbooks/figmeta/pkg/types"
)

// Sink receives diagnostic messages. Warnings never stop the build;
// errors do.
type Sink interface {
	Warning(message string, loc types.Location)
	Error(message string, loc types.Location)
}

// Collector accumulates diagnostics for one build. It is the only
// cross-document state: a single-writer tally with Reset at build start
// and Flush at build end. It is not safe for concurrent use.
type Collector struct {
	policy types.LicensePolicy
	sink   Sink

	missing int
	invalid int
	fatal   error
}

// NewCollector creates a collector for one build run.
func NewCollector(policy types.LicensePolicy, sink Sink) *Collector {
	return &Collector{policy: policy, sink: sink}
}

// Reset clears the tally at build start.
func (c *Collector) Reset() {
	c.missing = 0
	c.invalid = 0
	c.fatal = nil
}

// Process consumes the diagnostics of one figure. Under strict_check the
// first missing or invalid license aborts the build: Process emits the
// error and returns ErrStrictLicense wrapped with the figure location, and
// every later call returns the same error without processing, so the
// short-circuit is deterministic rather than best effort.
func (c *Collector) Process(diags []types.Diagnostic) error {
	if c.fatal != nil {
		return c.fatal
	}

	for _, d := range diags {
		switch d.Kind {
		case types.DiagMissingLicense, types.DiagInvalidLicense:
			if d.Kind == types.DiagMissingLicense {
				c.missing++
			} else {
				c.invalid++
			}
			if c.policy.StrictCheck {
				c.sink.Error(d.Message, d.Location)
				c.fatal = fmt.Errorf("%s: %w", d.Location, types.ErrStrictLicense)
				return c.fatal
			}
			if c.policy.Individual {
				c.sink.Warning(d.Message, d.Location)
			}
		default:
			// Date and source findings are always individual warnings.
			c.sink.Warning(d.Message, d.Location)
		}
	}
	return nil
}

// Counts returns the running license tally.
func (c *Collector) Counts() (missing, invalid int) {
	return c.missing, c.invalid
}

// Flush emits the end-of-build summary when enabled, then clears the
// tally. Summary reporting is independent of the individual setting.
func (c *Collector) Flush() {
	if c.policy.Summaries && c.missing+c.invalid > 0 {
		c.sink.Warning(fmt.Sprintf(
			"license check summary: %d figure(s) missing license information, %d figure(s) with unrecognized licenses",
			c.missing, c.invalid), types.Location{})
	}
	c.Reset()
}
