package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"salespark/internal/models"
)

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func bearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

func sessionActor(db *gorm.DB, raw string) (Actor, bool) {
	claims, err := Verify(raw)
	if err != nil {
		return Actor{}, false
	}
	var sess models.Session
	if claims.JWTID == "" || db.First(&sess, "jti = ?", claims.JWTID).Error != nil {
		return Actor{}, false
	}
	if sess.RevokedAt != nil || time.Now().After(sess.ExpiresAt) {
		return Actor{}, false
	}
	// Role is re-read from the store on every request; the claim may be stale.
	var u models.User
	if db.First(&u, "id = ?", claims.Subject).Error != nil || !u.IsActive {
		return Actor{}, false
	}
	role := u.Role
	if role == "" {
		role = models.RoleEditor
	}
	return Actor{UserID: u.ID, Role: role}, true
}

func tokenActor(db *gorm.DB, raw string) (Actor, bool) {
	tok, err := VerifyAPIToken(db, raw)
	if err != nil || tok == nil {
		return Actor{}, false
	}
	role := models.RoleEditor
	var u models.User
	if db.First(&u, "id = ?", tok.UserID).Error == nil && u.Role != "" {
		role = u.Role
	}
	return Actor{UserID: tok.UserID, Role: role, TokenID: tok.ID}, true
}

// SessionAuth admits only signed-in users with a live session.
func SessionAuth(db *gorm.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearer(r)
			if raw == "" {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			actor, ok := sessionActor(db, raw)
			if !ok {
				writeError(w, http.StatusUnauthorized, "invalid or expired session")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// TokenOrSession admits either a machine API token or a user session.
func TokenOrSession(db *gorm.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearer(r)
			if raw == "" {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			actor, ok := tokenActor(db, raw)
			if !ok {
				actor, ok = sessionActor(db, raw)
			}
			if !ok {
				writeError(w, http.StatusUnauthorized, "invalid or revoked credential")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ActorFrom(r.Context()).IsAdmin() {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
