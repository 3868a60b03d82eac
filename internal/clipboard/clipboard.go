// Package clipboard writes copied commands to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// Sink writes to the system clipboard in the background. Failures are only
// logged at debug level.
type Sink struct {
	logger *zap.Logger
	write  func(string) error
	done   func() // test hook, called after each write
}

// New creates a clipboard sink; logger may be nil
func New(logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{
		logger: logger.Named("clipboard"),
		write:  clipboard.WriteAll,
	}
}

// Available reports whether a clipboard utility was found
func Available() bool {
	return !clipboard.Unsupported
}

// Write hands text to the clipboard without waiting for the result
func (s *Sink) Write(text string) {
	go func() {
		if err := s.write(text); err != nil {
			s.logger.Debug("clipboard write failed", zap.Error(err))
		}
		if s.done != nil {
			s.done()
		}
	}()
}

// WriteSync writes text and returns the clipboard error, for the CLI
func (s *Sink) WriteSync(text string) error {
	return s.write(text)
}
