// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/casecollector/Case-Collector-Backend/internal/api/response"
)

// ValidateIndexMiddleware validates that the index URL parameter is present
// and parses as an integer. Returns 400 Bad Request otherwise. Out-of-range
// indexes are not rejected here; the ledger treats those as silent no-ops.
//
// Example usage in router:
//
//	r.Route("/{index}", func(r chi.Router) {
//	    r.Use(middleware.ValidateIndexMiddleware)
//	    r.Put("/", handler.Update)
//	    r.Delete("/", handler.Remove)
//	})
func ValidateIndexMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		index := chi.URLParam(r, "index")

		if index == "" {
			response.RespondError(w, http.StatusBadRequest, "holding index is required", "")
			return
		}

		if _, err := strconv.Atoi(index); err != nil {
			response.RespondError(w, http.StatusBadRequest, "holding index must be an integer", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
