package middleware

import (
	"net/http"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/staff"
	"github.com/worklog-hq/worklog-backend-go/internal/handler/http/response"
)

// RequireManager rejects requests whose token carries a role without
// management rights. It runs after AuthRequired, so the token has already
// been verified.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, err := staff.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !ident.Role.CanManage() {
			response.HandleError(w, staff.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
