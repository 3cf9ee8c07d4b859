// Package telemetry reports server errors to Sentry.
package telemetry

import (
	"time"

	"telephysio/pkg/config"

	"github.com/getsentry/sentry-go"
)

// Init configures the Sentry client and returns a flush function. With no DSN
// configured it does nothing.
func Init(cfg *config.SentryConfig) (func(), error) {
	if cfg.DSN == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		ServerName:  "telephysio",
	})
	if err != nil {
		return func() {}, err
	}

	return func() { sentry.Flush(2 * time.Second) }, nil
}

// CaptureError sends err with the request route attached. It is a no-op when
// Sentry has not been initialized.
func CaptureError(err error, method, path string) {
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("http.method", method)
		scope.SetTag("http.route", path)
	})
	hub.CaptureException(err)
}
