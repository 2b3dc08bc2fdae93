package async

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/isoshelf/pkg/utils/errutil"
)

// Dispatch runs handler in a new goroutine and returns a channel that is
// closed when it finishes.
//
// The handler gets a fresh background context carrying the logger and Sentry
// hub of ctx, so cancelling ctx does not stop it. Returned errors and panics
// are logged and reported through errutil.Handle.
func Dispatch(ctx context.Context, name string, handler func(ctx context.Context) error) <-chan struct{} {
	newCtx := newBackgroundContext(ctx, name)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				err := goerr.New("panic in async task",
					goerr.V("task", name),
					goerr.V("recover", fmt.Sprint(r)),
					goerr.V("stack", string(debug.Stack())),
				)
				errutil.Handle(newCtx, "Async task panicked", err)
			}
		}()

		if err := handler(newCtx); err != nil {
			errutil.Handle(newCtx, "Async task failed", goerr.Wrap(err, "async task failed", goerr.V("task", name)))
		}
	}()

	return done
}

// newBackgroundContext creates a context.Background() preserving the logger
// (tagged with the task name) and a clone of the Sentry hub
func newBackgroundContext(ctx context.Context, name string) context.Context {
	newCtx := context.Background()
	newCtx = ctxlog.With(newCtx, ctxlog.From(ctx).With("task", name))

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	return sentry.SetHubOnContext(newCtx, hub.Clone())
}
