package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"salespark/internal/auth"
	"salespark/internal/models"
)

func ListTokens(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := auth.ActorFrom(r.Context())
		var toks []models.ApiToken
		if err := db.Where("user_id = ?", actor.UserID).Order("created_at desc").Find(&toks).Error; err != nil {
			lg.Errorw("token list failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch tokens.")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"tokens": toks})
	}
}

// CreateToken returns the raw secret exactly once; only its digest is stored.
func CreateToken(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := auth.ActorFrom(r.Context())
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		name := strings.TrimSpace(req.Name)
		if name == "" {
			respondError(w, http.StatusBadRequest, `Token "name" is required.`)
			return
		}
		raw, err := auth.NewAPIToken()
		if err != nil {
			lg.Errorw("token generation failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create token.")
			return
		}
		tok := models.ApiToken{UserID: actor.UserID, Name: name, TokenHash: auth.HashToken(raw), IsActive: true}
		if err := db.Create(&tok).Error; err != nil {
			lg.Errorw("token create failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create token.")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]any{
			"token":      raw,
			"id":         tok.ID,
			"name":       tok.Name,
			"created_at": tok.CreatedAt,
			"warning":    "Store this token securely. It will not be shown again.",
		})
	}
}

// RevokeToken deactivates the caller's token. Tokens are never hard-deleted
// and never reactivated.
func RevokeToken(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := auth.ActorFrom(r.Context())
		var req struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.ID == "" {
			respondError(w, http.StatusBadRequest, `Token "id" is required.`)
			return
		}
		res := db.Model(&models.ApiToken{}).
			Where("id = ? AND user_id = ? AND is_active = ?", req.ID, actor.UserID, true).
			Update("is_active", false)
		if res.Error != nil {
			lg.Errorw("token revoke failed", "error", res.Error)
			respondError(w, http.StatusInternalServerError, "Failed to revoke token.")
			return
		}
		if res.RowsAffected == 0 {
			respondError(w, http.StatusNotFound, "Token not found or already revoked.")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"message": "Token revoked.", "id": req.ID})
	}
}
