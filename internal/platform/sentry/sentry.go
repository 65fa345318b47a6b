// Package sentryutil wraps error reporting so callers never import sentry-go
// directly. With an empty DSN every call is a no-op.
package sentryutil

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"

	"pratyaksh/internal/platform/config"
)

// Init configures the global Sentry hub. Failure is logged, never fatal.
func Init(cfg config.SentryConfig, logger *slog.Logger) {
	if cfg.DSN == "" {
		logger.Info("sentry disabled: SENTRY_DSN is empty")
		return
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		TracesSampleRate: 0.1,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			// Operator identity stays out of third-party storage.
			event.User = sentry.User{}
			return event
		},
	})
	if err != nil {
		logger.Warn("sentry init failed", "error", err)
		return
	}
	logger.Info("sentry initialized", "environment", cfg.Environment)
}

// Flush waits briefly for buffered events before shutdown.
func Flush() {
	sentry.Flush(2 * time.Second)
}

// CaptureError reports err with the given tags.
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}
