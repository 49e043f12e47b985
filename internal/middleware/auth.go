package middleware

import (
	"context"
	"net/http"
	"strings"

	"ticket-commerce-platform/internal/models"
)

type contextKey string

const (
	userContextKey  contextKey = "user"
	tokenContextKey contextKey = "token"
)

// TokenValidator validates a presented auth token and returns its user
type TokenValidator interface {
	ValidateToken(token string) (*models.User, error)
}

// AuthMiddleware authenticates requests with a Bearer token and loads the
// user into the request context. Handlers downstream always receive an
// explicit authenticated user; nothing is carried in ambient globals.
type AuthMiddleware struct {
	auth TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(auth TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth rejects requests without a valid token
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		user, err := m.auth.ValidateToken(token)
		if err != nil {
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		ctx = context.WithValue(ctx, tokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects requests whose authenticated user is not an admin.
// It must run inside RequireAuth.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		if user == nil || !user.IsAdmin() {
			http.Error(w, "Admin access required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext returns the authenticated user, or nil
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

// GetTokenFromContext returns the presented auth token, or ""
func GetTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// bearerToken extracts the token from the Authorization header
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
