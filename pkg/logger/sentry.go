package logger

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rotisserie/eris"
)

// SentrySettings represents the configuration required to bootstrap Sentry.
type SentrySettings struct {
	DSN         string
	Environment string
	Release     string
}

var hub *sentry.Hub

// InitSentry sets up error reporting. Without a DSN it is a no-op.
func InitSentry(settings SentrySettings) (func(), error) {
	if settings.DSN == "" {
		return func() {}, nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         settings.DSN,
		Environment: settings.Environment,
		Release:     settings.Release,
	})
	if err != nil {
		return nil, eris.Wrap(err, "error initializing sentry client")
	}

	hub = sentry.NewHub(client, sentry.NewScope())

	flush := func() {
		hub.Flush(2 * time.Second)
	}

	return flush, nil
}

// ReportError logs err with its eris stack and forwards it to Sentry when configured
func ReportError(err error, fields map[string]string) {
	if err == nil {
		return
	}

	event := zlog.Error().Str("error", err.Error())
	for k, v := range fields {
		event = event.Str(k, v)
	}
	event.Interface("stack", eris.ToJSON(err, true)).Msg("unhandled error")

	if hub == nil {
		return
	}
	local := hub.Clone()
	local.WithScope(func(scope *sentry.Scope) {
		for k, v := range fields {
			scope.SetTag(k, v)
		}
		local.CaptureException(err)
	})
}
