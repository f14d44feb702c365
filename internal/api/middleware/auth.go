package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"Peerpulse/internal/core/users"

	"github.com/golang-jwt/jwt/v5"
)

// Context keys for storing user information
type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	CollegeIDKey contextKey = "college_id"
	RoleKey      contextKey = "role"
	JWTClaimsKey contextKey = "jwt_claims"
)

// Claims are the access token claims issued by the auth service.
// The subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
	CollegeID string `json:"collegeId,omitempty"`
	Role      string `json:"role,omitempty"`
}

// UserLookup resolves the account behind a token
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*users.User, error)
}

// AuthMiddleware enforces HS256 bearer authentication for protected routes
type AuthMiddleware struct {
	users  UserLookup
	secret []byte
}

// NewAuthMiddleware creates a new auth middleware.
// When lookup is non-nil the user row is authoritative for college and role,
// and tokens for unknown users are rejected.
func NewAuthMiddleware(secret string, lookup UserLookup) *AuthMiddleware {
	return &AuthMiddleware{
		users:  lookup,
		secret: []byte(secret),
	}
}

// RequireAuth middleware ensures the user is authenticated with a valid JWT
// If not authenticated, returns 401
// If authenticated, injects user id, college, role and claims into context
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := m.verify(token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] type=verification_failed ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		userID := claims.Subject
		if userID == "" {
			writeAuthError(w, "Missing user id in token")
			return
		}

		collegeID, role := claims.CollegeID, users.Role(claims.Role)
		if m.users != nil {
			user, err := m.users.GetUserByID(r.Context(), userID)
			if err != nil {
				if users.IsNotFound(err) {
					writeAuthError(w, "Please authenticate")
					return
				}
				log.Printf("[AUTH_FAILURE] type=user_lookup user=%s error=%v", userID, err)
				writeJSONError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
				return
			}
			collegeID = ""
			if user.CollegeID != nil {
				collegeID = *user.CollegeID
			}
			role = user.Role
		}
		if role == "" {
			role = users.RoleUser
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, CollegeIDKey, collegeID)
		ctx = context.WithValue(ctx, RoleKey, role)
		ctx = context.WithValue(ctx, JWTClaimsKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

// GetUserID extracts the user's id from the request context
// Returns empty string if not authenticated
func GetUserID(r *http.Request) string {
	id, _ := r.Context().Value(UserIDKey).(string)
	return id
}

// GetCollegeID extracts the user's college from the request context
// Returns empty string if the user has no college or is not authenticated
func GetCollegeID(r *http.Request) string {
	id, _ := r.Context().Value(CollegeIDKey).(string)
	return id
}

// GetRole extracts the user's role from the request context
func GetRole(r *http.Request) users.Role {
	role, _ := r.Context().Value(RoleKey).(users.Role)
	return role
}

// GetJWTClaims extracts the JWT claims from the request context
// Returns nil if not authenticated
func GetJWTClaims(r *http.Request) *Claims {
	claims, _ := r.Context().Value(JWTClaimsKey).(*Claims)
	return claims
}

// SetTestUser sets the user identity in the context for testing purposes
// This function should ONLY be used in tests to mock authenticated users
func SetTestUser(ctx context.Context, userID, collegeID string, role users.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, CollegeIDKey, collegeID)
	return context.WithValue(ctx, RoleKey, role)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	writeJSONError(w, http.StatusUnauthorized, "AuthenticationRequired", message)
}

func writeJSONError(w http.ResponseWriter, status int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   errorType,
		"message": message,
	}); err != nil {
		log.Printf("Failed to write error response: %v", err)
	}
}
