package diag

import (
	"github.com/charmbracelet/log"

	"github.com/teachbooks/figmeta/pkg/types"
)

// LogSink writes diagnostics to a charmbracelet logger. Build-wide
// messages carry no location and are logged bare.
type LogSink struct {
	logger *log.Logger
}

// Compile-time interface check.
var _ Sink = (*LogSink)(nil)

// NewLogSink wraps the given logger as a diagnostic sink.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Warning logs a recoverable finding.
func (s *LogSink) Warning(message string, loc types.Location) {
	if loc == (types.Location{}) {
		s.logger.Warn(message)
		return
	}
	s.logger.Warn(message, "location", loc.String())
}

// Error logs a fatal finding.
func (s *LogSink) Error(message string, loc types.Location) {
	if loc == (types.Location{}) {
		s.logger.Error(message)
		return
	}
	s.logger.Error(message, "location", loc.String())
}
