package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/JaniDhruv/EduResolve/models"
	"github.com/JaniDhruv/EduResolve/service"
)

type contextKey string

// actorKey holds the authenticated *models.User in the request context.
const actorKey contextKey = "actor"

// AuthMiddleware validates the session token and resolves the actor.
type AuthMiddleware struct {
	userService *service.UserService
	jwtSecret   []byte
}

// NewAuthMiddleware creates a new auth middleware.
func NewAuthMiddleware(userService *service.UserService, jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		userService: userService,
		jwtSecret:   []byte(jwtSecret),
	}
}

// RequireAuth validates the bearer token, loads the actor from storage and
// stores it in the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Authorization header required.")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization format. Expected: Bearer <token>")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid or expired token.")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid token claims.")
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid token: user_id not found.")
			return
		}

		actor, err := m.userService.GetUserByID(int64(userIDFloat))
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "User not found.")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// RequireRoles gates a handler to the given roles. Must run after
// RequireAuth.
func RequireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required.")
				return
			}
			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			respondWithError(w, http.StatusForbidden, "Forbidden", "Insufficient role for this resource.")
		})
	}
}

// WithActor returns a copy of ctx carrying the authenticated actor, as
// RequireAuth does after token validation.
func WithActor(ctx context.Context, actor *models.User) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext returns the authenticated actor set by RequireAuth.
func ActorFromContext(ctx context.Context) (*models.User, bool) {
	actor, ok := ctx.Value(actorKey).(*models.User)
	return actor, ok
}

func respondWithError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	fmt.Fprintf(w, `{"error":%q,"message":%q,"code":%d}`, errorType, message, statusCode)
}
