package middleware

import "net/http"

// Chain folds middlewares into one, first argument outermost. The server uses
// it to hand the /api/v1 stack to the router as a single middleware:
//
//	Chain(Timeout(d), RateLimit(rps, burst))(h) == Timeout(d)(RateLimit(rps, burst)(h))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
}
