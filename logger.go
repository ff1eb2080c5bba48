package parallax

import (
	"log"

	"github.com/rs/zerolog"
)

// Logger receives one line per API call and notable SDK events.
type Logger interface {
	Log(format string, args ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Log(string, ...any) {}

type stdLogger struct {
	logger *log.Logger
}

// NewStdLogger adapts a standard library logger.
func NewStdLogger(l *log.Logger) Logger {
	return &stdLogger{logger: l}
}

func (s *stdLogger) Log(format string, args ...any) {
	s.logger.Printf(format, args...)
}

type zerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger adapts a zerolog logger. Lines are written at debug level.
func NewZerologLogger(l zerolog.Logger) Logger {
	return &zerologLogger{logger: l}
}

func (z *zerologLogger) Log(format string, args ...any) {
	z.logger.Debug().Msgf(format, args...)
}

// prefixLogger wraps a logger with a request ID prefix.
type prefixLogger struct {
	id   string
	base Logger
}

func (p *prefixLogger) Log(format string, args ...any) {
	p.base.Log("[%s] "+format, append([]any{p.id}, args...)...)
}
