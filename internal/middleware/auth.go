package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
)

type ctxKey string

const authUserKey ctxKey = "authUser"

type AuthUser struct {
	UID    string
	Email  string
	Claims map[string]any
}

func WithAuth(authClient *auth.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(strings.ToLower(h), "bearer ") {
				http.Error(w, "missing Authorization: Bearer <token>", http.StatusUnauthorized)
				return
			}
			idToken := strings.TrimSpace(h[len("Bearer "):])

			tok, err := authClient.VerifyIDToken(r.Context(), idToken)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			au := &AuthUser{
				UID:    tok.UID,
				Claims: tok.Claims,
			}
			if v, ok := tok.Claims["email"].(string); ok {
				au.Email = v
			}

			ctx := context.WithValue(r.Context(), authUserKey, au)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetAuthUser(ctx context.Context) (*AuthUser, bool) {
	v := ctx.Value(authUserKey)
	if v == nil {
		return nil, false
	}
	au, ok := v.(*AuthUser)
	return au, ok
}

// IsAdmin reports whether the token claims grant the admin dashboard role.
func IsAdmin(claims map[string]any) bool {
	if claims == nil {
		return false
	}
	if admin, ok := claims["admin"].(bool); ok && admin {
		return true
	}
	if role, ok := claims["role"].(string); ok {
		if role == "admin" || role == "superadmin" {
			return true
		}
	}
	if roles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range roles {
			if str, ok := r.(string); ok && (str == "admin" || str == "superadmin") {
				return true
			}
		}
	}
	return false
}

// IsStaff reports whether the claims carry any back-office role.
func IsStaff(claims map[string]any) bool {
	if claims == nil {
		return false
	}

	staffRoles := []string{"admin", "superadmin", "staff", "manager", "operator"}

	if role, ok := claims["role"].(string); ok {
		for _, r := range staffRoles {
			if role == r {
				return true
			}
		}
	}
	if staff, ok := claims["staff"].(bool); ok && staff {
		return true
	}
	if admin, ok := claims["admin"].(bool); ok && admin {
		return true
	}
	if roles, ok := claims["roles"].([]interface{}); ok {
		for _, role := range roles {
			if str, ok := role.(string); ok {
				for _, r := range staffRoles {
					if str == r {
						return true
					}
				}
			}
		}
	}
	return false
}
