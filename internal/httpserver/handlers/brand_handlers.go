package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"salespark/internal/services/brands"
)

func ListBrands(svc *brands.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.List()
		if err != nil {
			lg.Errorw("brand list failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch brands.")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"brands": out})
	}
}

func CreateBrand(svc *brands.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req brands.Input
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		b, err := svc.Create(req)
		if err != nil {
			respondServiceError(w, lg, err, "A brand with this name already exists.", "Brand not found.")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]any{"brand": b})
	}
}

func UpdateBrand(svc *brands.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req brands.UpdateInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		b, err := svc.Update(chi.URLParam(r, "id"), req)
		if err != nil {
			respondServiceError(w, lg, err, "A brand with this name already exists.", "Brand not found.")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"brand": b})
	}
}

func DeleteBrand(svc *brands.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, lg, err, "conflict", "Brand not found.")
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}
