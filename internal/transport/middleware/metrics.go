package middleware

import (
	"net/http"
	"time"

	"github.com/Ramon-Molinero/pokedex/pkg/ctxutil"
)

type httpObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics reports every request to obs, labelled by the matched route
// pattern. Requests that matched no route are labelled "unmatched".
func Metrics(obs httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx, route := ctxutil.WithRoute(r.Context())
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r.WithContext(ctx))

			label := *route
			if label == "" {
				label = "unmatched"
			}
			obs.ObserveHTTP(r.Method, label, sw.status, time.Since(start))
		})
	}
}

// Route wraps a handler registered under pattern so that Metrics can label
// requests with it.
func Route(pattern string, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxutil.SetRoute(r.Context(), pattern)
		h.ServeHTTP(w, r)
	})
}
