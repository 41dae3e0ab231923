package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

type contextKey string

const loggerKey = contextKey("logger")

// NewLogger initializes a single logger that can log at multiple levels.
func NewLogger(logLevel logrus.Level, logToFile bool, filePath string) *logrus.Logger {
	logger := logrus.New()

	// Set the threshold log level (e.g., Info, Warn, Error)
	logger.SetLevel(logLevel)

	// Configure output destination
	if logToFile {
		// Open or create the log file
		file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			logger.Fatal("Could not open log file:", err)
		}
		logger.SetOutput(file)
	} else {
		logger.SetOutput(os.Stdout)
	}

	logger.SetFormatter(&logrus.JSONFormatter{})

	return logger
}

// ParseLevel is logrus.ParseLevel with an Info fallback.
func ParseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

func WithLogger(ctx context.Context, logger *logrus.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func LoggerFromContext(ctx context.Context) *logrus.Logger {
	logger, ok := ctx.Value(loggerKey).(*logrus.Logger)
	if !ok {
		// Fallback to a default logger if none is found
		defaultLogger := logrus.New()
		defaultLogger.SetLevel(logrus.InfoLevel)
		defaultLogger.SetFormatter(&logrus.TextFormatter{})
		return defaultLogger
	}
	return logger
}

// NewLogrLogger exposes a logrus logger through the logr API used by the
// debouncer and the scheduler. logr V(0) maps to Info, anything above to
// Debug.
func NewLogrLogger(logger *logrus.Logger) logr.Logger {
	return logr.New(&logrusSink{logger: logger})
}

type logrusSink struct {
	logger *logrus.Logger
	name   string
	fields logrus.Fields
}

func (s *logrusSink) Init(logr.RuntimeInfo) {}

func (s *logrusSink) Enabled(level int) bool {
	return s.logger.IsLevelEnabled(toLogrusLevel(level))
}

func (s *logrusSink) Info(level int, msg string, keysAndValues ...any) {
	s.entry(keysAndValues).Log(toLogrusLevel(level), msg)
}

func (s *logrusSink) Error(err error, msg string, keysAndValues ...any) {
	s.entry(keysAndValues).WithError(err).Error(msg)
}

func (s *logrusSink) WithValues(keysAndValues ...any) logr.LogSink {
	return &logrusSink{logger: s.logger, name: s.name, fields: mergeFields(s.fields, keysAndValues)}
}

func (s *logrusSink) WithName(name string) logr.LogSink {
	if s.name != "" {
		name = s.name + "." + name
	}
	return &logrusSink{logger: s.logger, name: name, fields: s.fields}
}

func (s *logrusSink) entry(keysAndValues []any) *logrus.Entry {
	fields := mergeFields(s.fields, keysAndValues)
	if s.name != "" {
		fields["logger"] = s.name
	}
	return s.logger.WithFields(fields)
}

func toLogrusLevel(level int) logrus.Level {
	if level > 0 {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

func mergeFields(base logrus.Fields, keysAndValues []any) logrus.Fields {
	fields := make(logrus.Fields, len(base)+len(keysAndValues)/2)
	for k, v := range base {
		fields[k] = v
	}
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 < len(keysAndValues) {
			fields[key] = keysAndValues[i+1]
		} else {
			fields[key] = "(MISSING)"
		}
	}
	return fields
}
