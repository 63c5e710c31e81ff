package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"salespark/internal/metrics"
	"salespark/internal/services/sales"
)

// Counter endpoints are unauthenticated and best-effort: the caller never
// blocks a user-visible action on them, so failures are logged and the
// response stays 200.
func ViewSale(svc *sales.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := svc.IncrementView(id); err != nil {
			lg.Warnw("view increment failed", "sale_id", id, "error", err)
		} else {
			metrics.SaleViews.Inc()
		}
		respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

func FavoriteSale(svc *sales.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := svc.IncrementFavorite(id); err != nil {
			lg.Warnw("favorite increment failed", "sale_id", id, "error", err)
		} else {
			metrics.SaleFavorites.WithLabelValues("add").Inc()
		}
		respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

func UnfavoriteSale(svc *sales.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := svc.DecrementFavorite(id); err != nil {
			lg.Warnw("favorite decrement failed", "sale_id", id, "error", err)
		} else {
			metrics.SaleFavorites.WithLabelValues("remove").Inc()
		}
		respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
