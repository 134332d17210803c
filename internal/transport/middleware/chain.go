package middleware

import "net/http"

// Middleware wraps an http.Handler with cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain folds several middleware into one. Order matters:
// Chain(mw1, mw2)(handler) produces mw1(mw2(handler)), so the first argument
// is outermost — request ID and logging belong at the front, auth at the back
// so everything inner sees the resolved identity.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
