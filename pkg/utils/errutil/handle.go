package errutil

import (
	"context"
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs err and sends it to Sentry when a Sentry client is configured.
// The hub bound to ctx is preferred over the global one.
func Handle(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	attrs := []any{"error", err}

	var gErr *goerr.Error
	if errors.As(err, &gErr) {
		for k, v := range gErr.Values() {
			attrs = append(attrs, k, v)
		}
	}
	logger.Error(msg, attrs...)

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("message", msg)
		evID := hub.CaptureException(err)
		if evID != nil {
			logger.Debug("Error reported to Sentry", "event_id", *evID)
		}
	})
}
