package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"salespark/internal/models"
)

func ListUsers(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			lg.Errorw("user list failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch users.")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"users": users})
	}
}

func UpdateUserRole(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Role string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Role != models.RoleAdmin && req.Role != models.RoleEditor {
			respondError(w, http.StatusBadRequest, `"role" must be "admin" or "editor".`)
			return
		}
		id := chi.URLParam(r, "id")
		res := db.Model(&models.User{}).Where("id = ?", id).
			Updates(map[string]any{"role": req.Role, "updated_at": time.Now()})
		if res.Error != nil {
			lg.Errorw("role update failed", "error", res.Error)
			respondError(w, http.StatusInternalServerError, "Failed to update role.")
			return
		}
		if res.RowsAffected == 0 {
			respondError(w, http.StatusNotFound, "User not found.")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"updated": true})
	}
}
