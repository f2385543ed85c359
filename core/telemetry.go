package core

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

const sentryFlushTimeout = 2 * time.Second

// SetupSentry enables crash reporting when dsn is set and registers it as the
// crash reporter. The returned func flushes pending events and is safe to
// call when reporting is off.
func SetupSentry(dsn, release string, log logrus.FieldLogger) func() {
	if dsn == "" {
		return func() {}
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          release,
		AttachStacktrace: true,
	})
	if err != nil {
		log.WithError(err).Warn("sentry disabled")
		return func() {}
	}

	SetCrashReporter(func(r any) {
		sentry.CurrentHub().Recover(r)
		sentry.Flush(sentryFlushTimeout)
	})
	log.WithField("release", release).Info("crash reporting enabled")

	return func() { sentry.Flush(sentryFlushTimeout) }
}

// ReportError sends a non-fatal error when reporting is enabled
func ReportError(err error, context string) {
	if err == nil || sentry.CurrentHub().Client() == nil {
		return
	}
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("context", context)
	})
	hub.CaptureException(fmt.Errorf("%s: %w", context, err))
}
