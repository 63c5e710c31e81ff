package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"salespark/internal/auth"
	"salespark/internal/metrics"
	"salespark/internal/services/listing"
	"salespark/internal/services/sales"
)

const capMsg = "This brand already has 3 active sales. Remove or let one expire first."

// PublicSales serves the approved listing. Filter and sort parameters are
// optional query params applied in memory against the current date.
func PublicSales(svc *sales.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.ListPublic()
		if err != nil {
			lg.Errorw("sale list failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch sales.")
			return
		}
		q := r.URL.Query()
		f := listing.Filters{
			BrandID:  q.Get("brand"),
			SaleType: q.Get("sale_type"),
			Status:   q.Get("status"),
			Sort:     q.Get("sort"),
		}
		today := svc.Now().UTC().Format("2006-01-02")
		respondJSON(w, http.StatusOK, map[string]any{"sales": listing.Apply(all, f, today)})
	}
}

func DashboardSales(svc *sales.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.ListFor(auth.ActorFrom(r.Context()))
		if err != nil {
			lg.Errorw("sale list failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch sales.")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"sales": out})
	}
}

func CreateSale(svc *sales.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sales.CreateInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		sale, err := svc.Create(req, auth.ActorFrom(r.Context()))
		if err != nil {
			respondServiceError(w, lg, err, capMsg, `Brand with id "`+req.BrandID+`" not found.`)
			return
		}
		metrics.SalesCreated.WithLabelValues(sale.Status).Inc()
		respondJSON(w, http.StatusCreated, map[string]any{"sale": sale})
	}
}

func UpdateSale(svc *sales.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sales.UpdateInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		sale, err := svc.Update(chi.URLParam(r, "id"), req, auth.ActorFrom(r.Context()))
		if err != nil {
			respondServiceError(w, lg, err, "conflict", "Sale not found.")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"sale": sale})
	}
}

func DeleteSale(svc *sales.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(chi.URLParam(r, "id"), auth.ActorFrom(r.Context())); err != nil {
			respondServiceError(w, lg, err, "conflict", "Sale not found.")
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}

func ApproveSale(svc *sales.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return moderate(svc, lg, "approved")
}

func RejectSale(svc *sales.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return moderate(svc, lg, "rejected")
}

func moderate(svc *sales.Service, lg *zap.SugaredLogger, status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sale, err := svc.SetStatus(chi.URLParam(r, "id"), status, auth.ActorFrom(r.Context()))
		if err != nil {
			respondServiceError(w, lg, err, "conflict", "Sale not found.")
			return
		}
		metrics.SalesModerated.WithLabelValues(status).Inc()
		respondJSON(w, http.StatusOK, map[string]any{"sale": sale})
	}
}
