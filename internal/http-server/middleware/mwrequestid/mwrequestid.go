// Package mwrequestid assigns a uuid to every request and stores it under
// chi's request-id context key so middleware.GetReqID keeps working.
package mwrequestid

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const headerName = "X-Request-Id"

func New() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(headerName)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := context.WithValue(r.Context(), middleware.RequestIDKey, requestID)
			w.Header().Set(headerName, requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}
