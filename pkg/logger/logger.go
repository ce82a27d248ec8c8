package logger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the process logger: JSON lines on stdout, level taken from level ("debug", "info", "warn", "error").
func New(service, level string) *logrus.Entry {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	log.SetOutput(os.Stdout)
	switch level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log.WithField("service", service)
}

// Discard is used where a component is built without an explicit logger (tests mostly).
func Discard() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(discard{})
	return logrus.NewEntry(log)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

type ctxKey struct{}

// ToContext stores a request-scoped entry for FromContext.
func ToContext(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxKey{}, entry)
}

// FromContext returns the entry stored by ToContext, or fallback when there is none.
func FromContext(ctx context.Context, fallback *logrus.Entry) *logrus.Entry {
	if entry, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok && entry != nil {
		return entry
	}
	return fallback
}
