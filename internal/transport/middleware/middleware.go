// Package middleware holds the net/http middleware wrapped around the REST
// router.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/brandvoice-backend/internal/config"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Chain(mw1, mw2)(handler) is mw1(mw2(handler)): mw1 runs first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Standard is the server's chain, outermost first:
// Recovery, RequestID, Logger, CORS, BodyLimit.
func Standard(logger *slog.Logger, srv config.ServerConfig, cors config.CORSConfig) Middleware {
	return Chain(
		Recovery(logger),
		RequestID(),
		Logger(logger),
		CORS(cors),
		BodyLimit(srv.MaxBodyBytes),
	)
}
