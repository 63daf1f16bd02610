package errors

import (
	"github.com/sirupsen/logrus"
)

// LogHandler is an ErrorHandler that writes through a logrus logger.
type LogHandler struct {
	// Logger receives entries; nil uses logrus.StandardLogger().
	Logger *logrus.Logger
	// Verbose adds stack traces to entries.
	Verbose bool
}

// NewLogHandler returns a LogHandler for logger. A nil logger uses the
// logrus standard logger.
func NewLogHandler(logger *logrus.Logger) *LogHandler {
	return &LogHandler{Logger: logger}
}

func (h *LogHandler) entry(op string) *logrus.Entry {
	logger := h.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return logger.WithField("module", op)
}

// HandleError logs an Error. Parsing errors are tolerated by the caller
// and log at warn level; everything else logs at error level.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	entry := h.entry(err.Op).WithField("kind", err.Kind.String())
	if h.Verbose && err.StackTrace != "" {
		entry = entry.WithField("stack", err.StackTrace)
	}
	if err.Kind == KindParsing {
		entry.Warn(err.Err)
		return
	}
	entry.Error(err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	entry := h.entry(err.Op)
	if h.Verbose && err.StackTrace != "" {
		entry = entry.WithField("stack", err.StackTrace)
	}
	entry.Errorf("panic: %v", err.Value)
}
