package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log = logrus.NewEntry(logrus.StandardLogger())

type logOptions struct {
	verbose bool
	file    string
}

// logFormatter prints "[LEVEL timestamp] [module] message". Colours are
// only used when color is set.
type logFormatter struct {
	color bool
}

func (f *logFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006-01-02 15:04:05")

	var levelColor, levelText string
	switch entry.Level {
	case logrus.InfoLevel:
		levelColor, levelText = "\033[36m", " INFO"
	case logrus.WarnLevel:
		levelColor, levelText = "\033[33m", " WARN"
	case logrus.ErrorLevel:
		levelColor, levelText = "\033[31m", "ERROR"
	case logrus.DebugLevel:
		levelColor, levelText = "\033[37m", "DEBUG"
	default:
		levelColor, levelText = "\033[0m", strings.ToUpper(entry.Level.String())
	}
	reset := "\033[0m"
	if !f.color {
		levelColor, reset = "", ""
	}

	module := "main"
	if m, ok := entry.Data["module"].(string); ok {
		module = m
	}

	var extra strings.Builder
	for _, k := range []string{"kind", "index", "len", "stack"} {
		if v, ok := entry.Data[k]; ok {
			fmt.Fprintf(&extra, " %s=%v", k, v)
		}
	}

	return []byte(fmt.Sprintf("[%s%s%s %s] [%12s] %s%s\n",
		levelColor, levelText, reset, timestamp, module, entry.Message, extra.String())), nil
}

// newLogger builds the CLI logger. Logs go to stderr and, with a log file,
// to a size-rotated file as well.
func newLogger(opts logOptions) (*logrus.Logger, func()) {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	if opts.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if opts.file == "" {
		logger.SetOutput(os.Stderr)
		logger.SetFormatter(&logFormatter{color: isTerminal(os.Stderr)})
		return logger, func() {}
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.file,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	logger.SetOutput(io.MultiWriter(os.Stderr, rotator))
	logger.SetFormatter(&logFormatter{})
	return logger, func() { rotator.Close() }
}

func setLogger(logger *logrus.Logger) {
	log = logger.WithField("module", "chili")
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
