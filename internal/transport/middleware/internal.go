package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/pkg/ctxutil"
)

// InternalTokenHeader carries the shared secret of trusted callers.
const InternalTokenHeader = "X-Internal-Token"

// InternalCaller is the caller name recorded for requests that passed
// RequireInternalToken.
const InternalCaller = "internal-token"

// RequireInternalToken admits only requests presenting token in
// InternalTokenHeader. An empty token rejects every request.
func RequireInternalToken(token string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(InternalTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				writeError(w, http.StatusForbidden, domain.CodeForbidden, "internal route")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithCaller(r.Context(), InternalCaller)))
		})
	}
}
