package api

import (
	"context"
	"net/http"

	respond "github.com/ayushi-devx/Virtual-Assistant/internal/api/respond"
	"github.com/ayushi-devx/Virtual-Assistant/internal/api/validate"
)

type ctxKey int

const ownerKey ctxKey = iota

// RequireOwner extracts the trusted X-User-ID header set by the upstream
// gateway and rejects requests that lack a well-formed one.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner := r.Header.Get("X-User-ID")
		if err := validate.OwnerID(owner); err != nil {
			respond.WriteUnauthorized(w, err.Error())
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ownerKey, owner)))
	})
}

// ownerFrom returns the caller id placed in the context by RequireOwner.
func ownerFrom(r *http.Request) string {
	owner, _ := r.Context().Value(ownerKey).(string)
	return owner
}
