package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"salespark/internal/auth"
	"salespark/internal/config"
	"salespark/internal/httpserver"
	"salespark/internal/logger"
	"salespark/internal/models"
	"salespark/internal/services/brands"
	"salespark/internal/services/sales"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()
	lg := logger.New(cfg.LogLevel)
	defer lg.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Session{}, &models.Brand{}, &models.Sale{}, &models.ApiToken{}); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}
	seedDefaultAdmin(db, lg)

	saleSvc := sales.New(db, lg, cfg.ActiveSaleCap)
	brandSvc := brands.New(db, lg, cfg.BrandNameUnique)
	router := httpserver.NewRouter(db, lg, saleSvc, brandSvc)

	lg.Infow("listening", "port", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatal(err)
	}
}

func seedDefaultAdmin(db *gorm.DB, lg *zap.SugaredLogger) {
	email := strings.ToLower("admin@salespark.local")
	var count int64
	db.Model(&models.User{}).Where("LOWER(email) = ?", email).Count(&count)
	if count > 0 {
		return
	}
	hash, _ := auth.HashPassword("changeme")
	u := models.User{Email: email, PasswordHash: hash, Role: models.RoleAdmin, IsActive: true, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	if err := db.Create(&u).Error; err != nil {
		lg.Warnw("admin seed failed", "error", err)
		return
	}
	lg.Infow("seeded default admin", "email", email)
}
