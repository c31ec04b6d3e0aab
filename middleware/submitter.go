package middleware

import (
	"net/http"
	"strings"

	"github.com/blogem/permit-tracker/userctx"
)

// SubmitterHeader names the person submitting a permit. There is no
// authentication; the value is passed through to the workflow as-is.
const SubmitterHeader = "X-Submitter-Email"

// Submitter copies the submitter header into the request context
func Submitter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if email := strings.TrimSpace(r.Header.Get(SubmitterHeader)); email != "" {
			r = r.WithContext(userctx.SetSubmitterEmail(r.Context(), email))
		}
		next.ServeHTTP(w, r)
	})
}
