package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"salespark/internal/auth"
	"salespark/internal/httpserver/handlers"
	"salespark/internal/services/brands"
	"salespark/internal/services/sales"
)

func NewRouter(db *gorm.DB, lg *zap.SugaredLogger, saleSvc *sales.Service, brandSvc *brands.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Use(cors)

	r.Post("/v1/auth/login", handlers.Login(db, lg))

	// Public listing reads and the fire-and-forget counters.
	r.Get("/v1/brands", handlers.ListBrands(brandSvc, lg))
	r.Get("/v1/sales", handlers.PublicSales(saleSvc, lg))
	r.Post("/v1/sales/{id}/view", handlers.ViewSale(saleSvc, lg))
	r.Post("/v1/sales/{id}/favorite", handlers.FavoriteSale(saleSvc, lg))
	r.Delete("/v1/sales/{id}/favorite", handlers.UnfavoriteSale(saleSvc, lg))

	// Mutations open to machine tokens as well as sessions.
	r.Group(func(machine chi.Router) {
		machine.Use(auth.TokenOrSession(db))
		machine.Post("/v1/brands", handlers.CreateBrand(brandSvc, lg))
		machine.Post("/v1/sales", handlers.CreateSale(saleSvc, lg))
	})

	r.Group(func(protected chi.Router) {
		protected.Use(auth.SessionAuth(db))
		protected.Get("/v1/me", handlers.Me(db, lg))
		protected.Post("/v1/auth/logout", handlers.Logout(db))
		protected.Get("/v1/dashboard/sales", handlers.DashboardSales(saleSvc, lg))
		protected.Patch("/v1/sales/{id}", handlers.UpdateSale(saleSvc, lg))
		protected.Delete("/v1/sales/{id}", handlers.DeleteSale(saleSvc, lg))
		protected.Get("/v1/tokens", handlers.ListTokens(db, lg))
		protected.Post("/v1/tokens", handlers.CreateToken(db, lg))
		protected.Delete("/v1/tokens", handlers.RevokeToken(db, lg))
		protected.Group(func(admin chi.Router) {
			admin.Use(auth.RequireAdmin)
			admin.Post("/v1/sales/{id}/approve", handlers.ApproveSale(saleSvc, lg))
			admin.Post("/v1/sales/{id}/reject", handlers.RejectSale(saleSvc, lg))
			admin.Patch("/v1/brands/{id}", handlers.UpdateBrand(brandSvc, lg))
			admin.Delete("/v1/brands/{id}", handlers.DeleteBrand(brandSvc, lg))
			admin.Get("/v1/admin/users", handlers.ListUsers(db, lg))
			admin.Patch("/v1/admin/users/{id}/role", handlers.UpdateUserRole(db, lg))
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
