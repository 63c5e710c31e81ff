// Package brands implements the brand registry.
package brands

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"salespark/internal/models"
	"salespark/internal/services"
)

type Service struct {
	db *gorm.DB
	lg *zap.SugaredLogger
	// uniqueNames enforces case-insensitive name uniqueness. Policy, not a
	// universal invariant: only one upstream deployment runs with it off.
	uniqueNames bool
}

func New(db *gorm.DB, lg *zap.SugaredLogger, uniqueNames bool) *Service {
	return &Service{db: db, lg: lg, uniqueNames: uniqueNames}
}

// List returns all brands, newest first. Public read, no auth.
func (s *Service) List() ([]models.Brand, error) {
	var out []models.Brand
	err := s.db.Order("created_at desc").Find(&out).Error
	return out, err
}

type Input struct {
	Name       string `json:"name"`
	WebsiteURL string `json:"website_url"`
	Category   string `json:"category"`
	LogoURL    string `json:"logo_url"`
}

func (s *Service) Create(in Input) (*models.Brand, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &services.ValidationError{Errors: []string{`"name" is required and must be a non-empty string.`}}
	}
	if s.uniqueNames {
		var count int64
		if err := s.db.Model(&models.Brand{}).
			Where("LOWER(name) = LOWER(?)", name).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, services.ErrConflict
		}
	}
	b := &models.Brand{
		Name:       name,
		WebsiteURL: strings.TrimSpace(in.WebsiteURL),
		Category:   strings.TrimSpace(in.Category),
		LogoURL:    strings.TrimSpace(in.LogoURL),
	}
	if err := s.db.Create(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

type UpdateInput struct {
	Name       *string `json:"name"`
	WebsiteURL *string `json:"website_url"`
	Category   *string `json:"category"`
	LogoURL    *string `json:"logo_url"`
}

func (s *Service) Update(id string, in UpdateInput) (*models.Brand, error) {
	var b models.Brand
	if err := s.db.First(&b, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, &services.ValidationError{Errors: []string{`"name" is required and must be a non-empty string.`}}
		}
		if s.uniqueNames && !strings.EqualFold(name, b.Name) {
			var count int64
			if err := s.db.Model(&models.Brand{}).
				Where("LOWER(name) = LOWER(?) AND id <> ?", name, id).
				Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, services.ErrConflict
			}
		}
		b.Name = name
	}
	if in.WebsiteURL != nil {
		b.WebsiteURL = strings.TrimSpace(*in.WebsiteURL)
	}
	if in.Category != nil {
		b.Category = strings.TrimSpace(*in.Category)
	}
	if in.LogoURL != nil {
		b.LogoURL = strings.TrimSpace(*in.LogoURL)
	}
	b.UpdatedAt = time.Now()
	if err := s.db.Save(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// Delete removes a brand and all of its sales.
func (s *Service) Delete(id string) error {
	var b models.Brand
	if err := s.db.First(&b, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return services.ErrNotFound
		}
		return err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Sale{}, "brand_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Brand{}, "id = ?", id).Error
	})
	if err == nil {
		s.lg.Infow("brand deleted", "brand_id", id, "name", b.Name)
	}
	return err
}
