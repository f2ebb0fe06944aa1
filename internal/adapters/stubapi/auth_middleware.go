package stubapi

import (
	"context"
	"net/http"
	"strings"
)

type ctxKeyUserID struct{}

func userIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKeyUserID{}).(string)
	return id, ok
}

// requireAuth enforces Authorization: Bearer <token> and resolves the
// token against live sessions. A revoked or unknown token gets 401, the
// signal the client reacts to by dropping its stored session.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz == "" {
			writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing Authorization header")
			return
		}
		const prefix = "Bearer "
		if !strings.HasPrefix(authz, prefix) {
			writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "malformed Authorization header")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authz, prefix))

		s.mu.Lock()
		userID, ok := s.sessions[token]
		s.mu.Unlock()
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyUserID{}, userID)))
	})
}
