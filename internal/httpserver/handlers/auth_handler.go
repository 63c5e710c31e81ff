package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"salespark/internal/auth"
	"salespark/internal/models"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Email == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, `Fields "email" and "password" are required.`)
			return
		}
		var u models.User
		if err := db.First(&u, "email = ?", strings.ToLower(req.Email)).Error; err != nil {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		if !u.IsActive || auth.CheckPassword(u.PasswordHash, req.Password) != nil {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		tok, jti, err := auth.Sign(u.ID, u.Role)
		if err != nil {
			lg.Errorw("token sign failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		ttl := auth.TokenTTL()
		sess := models.Session{JTI: jti, UserID: u.ID, ExpiresAt: time.Now().Add(ttl), CreatedAt: time.Now()}
		if err := db.Create(&sess).Error; err != nil {
			lg.Errorw("session create failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"access_token": tok,
			"expires_in":   int64(ttl.Seconds()),
			"user":         map[string]string{"id": u.ID, "email": u.Email, "role": u.Role},
		})
	}
}

func Logout(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := auth.Verify(raw)
		if err == nil && claims.JWTID != "" {
			now := time.Now()
			db.Model(&models.Session{}).Where("jti = ?", claims.JWTID).Update("revoked_at", &now)
		}
		respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

func Me(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := auth.ActorFrom(r.Context())
		var u models.User
		if err := db.First(&u, "id = ?", actor.UserID).Error; err != nil {
			respondError(w, http.StatusNotFound, "not found")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"id": u.ID, "email": u.Email, "role": u.Role, "is_active": u.IsActive,
		})
	}
}
