package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hr-management/internal"
)

// RoleAuthorization gates handlers on the role carried by the verified
// identity. It assumes AuthMiddleware already ran; a request without an
// identity is unauthenticated, not forbidden.
type RoleAuthorization struct {
	logger *slog.Logger
}

func NewRoleAuthorization(logger *slog.Logger) *RoleAuthorization {
	return &RoleAuthorization{logger: logger}
}

// Require allows the request through when the identity's role is in the
// allowed set. A single role argument behaves exactly like a one-element set.
func (ra *RoleAuthorization) Require(roles ...Role) func(http.Handler) http.Handler {
	allowed := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok || identity == nil {
				ra.logger.Warn("authorization check failed: identity not found in context")
				ra.writeError(w, internal.ErrMissingToken)
				return
			}

			if _, ok := allowed[identity.Role]; !ok {
				ra.logger.Warn("access denied: insufficient role",
					"user_id", identity.ID,
					"role", identity.Role,
					"required_roles", roles)
				ra.writeError(w, internal.ErrForbiddenRole)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (ra *RoleAuthorization) RequireUser() func(http.Handler) http.Handler {
	return ra.Require(RoleUser)
}

func (ra *RoleAuthorization) RequireAdmin() func(http.Handler) http.Handler {
	return ra.Require(RoleAdmin)
}

// RequireAny admits every authenticated identity regardless of role.
func (ra *RoleAuthorization) RequireAny() func(http.Handler) http.Handler {
	return ra.Require(RoleUser, RoleAdmin)
}

func (ra *RoleAuthorization) writeError(w http.ResponseWriter, appErr *internal.AppError) {
	status, body := appErr.ToHTTPResponse()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ra.logger.Error("failed to encode error response", "error", err)
	}
}
