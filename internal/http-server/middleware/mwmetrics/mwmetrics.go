// Package mwmetrics feeds every finished request into the Prometheus
// counters, labelled with the chi route pattern rather than the raw path so
// /items/17 and /items/42 land in one series.
package mwmetrics

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"itemshare/internal/metrics"
)

func New() func(next http.Handler) http.Handler {
	metrics.Register()

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			t1 := time.Now()
			next.ServeHTTP(ww, r)

			endpoint := chi.RouteContext(r.Context()).RoutePattern()
			if endpoint == "" {
				endpoint = "unmatched"
			}

			metrics.ObserveHTTP(endpoint, r.Method, ww.Status(), time.Since(t1).Seconds())
		}

		return http.HandlerFunc(fn)
	}
}
