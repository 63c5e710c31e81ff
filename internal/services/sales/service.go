// Package sales implements the sale submission and moderation workflow:
// validation, the per-brand active-sale cap, status transitions and the
// role-gated ownership rules.
package sales

import (
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"salespark/internal/auth"
	"salespark/internal/models"
	"salespark/internal/services"
)

type Service struct {
	db  *gorm.DB
	lg  *zap.SugaredLogger
	cap int64
	// Now is the clock used for the derived-active computation and the
	// active-sale cap; injectable so tests can pin today.
	Now func() time.Time
}

func New(db *gorm.DB, lg *zap.SugaredLogger, activeCap int64) *Service {
	return &Service{db: db, lg: lg, cap: activeCap, Now: time.Now}
}

func (s *Service) today() string {
	return s.Now().UTC().Format("2006-01-02")
}

// Create validates a submission, enforces the per-brand active-sale cap and
// inserts the sale. The brand lookup, the cap count and the insert run in one
// transaction; on postgres the brand row is locked so two concurrent
// submissions for the same brand cannot both pass the cap check.
func (s *Service) Create(in CreateInput, actor auth.Actor) (*models.Sale, error) {
	if errs := validateCreate(in); len(errs) > 0 {
		return nil, &services.ValidationError{Errors: errs}
	}
	today := s.today()

	ts := SaleTypes[in.SaleType]
	mode := in.DiscountMode
	if ts.HasValue && mode == "" {
		mode = ts.DefaultMode
	}
	status := models.StatusPending
	if actor.IsAdmin() {
		status = models.StatusApproved
	}
	sale := &models.Sale{
		BrandID:       in.BrandID,
		Title:         strings.TrimSpace(in.Title),
		SaleType:      in.SaleType,
		DiscountValue: in.DiscountValue,
		DiscountMode:  mode,
		Notes:         strings.TrimSpace(in.Notes),
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		SaleURL:       strings.TrimSpace(in.SaleURL),
		Status:        status,
		CreatedBy:     actor.UserID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		btx := tx
		if tx.Dialector.Name() == "postgres" {
			btx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var brand models.Brand
		if err := btx.First(&brand, "id = ?", in.BrandID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return services.ErrNotFound
			}
			return err
		}
		var count int64
		if err := tx.Model(&models.Sale{}).
			Where("brand_id = ? AND end_date >= ?", in.BrandID, today).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= s.cap {
			return services.ErrConflict
		}
		return tx.Create(sale).Error
	})
	if err != nil {
		return nil, err
	}
	s.lg.Infow("sale created", "sale_id", sale.ID, "brand_id", sale.BrandID, "status", sale.Status)
	sale.Active = sale.IsActive(today)
	return sale, nil
}

type UpdateInput struct {
	BrandID       *string  `json:"brand_id"`
	Title         *string  `json:"title"`
	SaleType      *string  `json:"sale_type"`
	DiscountValue *float64 `json:"discount_value"`
	DiscountMode  *string  `json:"discount_mode"`
	Notes         *string  `json:"notes"`
	StartDate     *string  `json:"start_date"`
	EndDate       *string  `json:"end_date"`
	SaleURL       *string  `json:"sale_url"`
	Status        *string  `json:"status"`

	clearDiscountValue bool
	clearDiscountMode  bool
}

// UnmarshalJSON keeps track of fields that were sent as an explicit null,
// which a plain *T pointer cannot distinguish from an absent field. Clients
// send null to wipe the discount value or mode when switching sale types.
func (in *UpdateInput) UnmarshalJSON(data []byte) error {
	type plain UpdateInput
	if err := json.Unmarshal(data, (*plain)(in)); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	in.clearDiscountValue = string(raw["discount_value"]) == "null"
	in.clearDiscountMode = string(raw["discount_mode"]) == "null"
	return nil
}

// Update applies the fields present in the payload. Non-admin actors may only
// touch their own sales and their status field is stripped, never honored.
func (s *Service) Update(id string, in UpdateInput, actor auth.Actor) (*models.Sale, error) {
	var sale models.Sale
	if err := s.db.First(&sale, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin() {
		if sale.CreatedBy != actor.UserID {
			return nil, services.ErrForbidden
		}
		in.Status = nil
	}

	var errs []string
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			errs = append(errs, `"title" is required.`)
		} else {
			sale.Title = strings.TrimSpace(*in.Title)
		}
	}
	if in.SaleType != nil {
		if ts, ok := SaleTypes[*in.SaleType]; !ok {
			errs = append(errs, `"sale_type" is required and must be one of: percentage, fixed, bogo, b2g1, deal.`)
		} else {
			sale.SaleType = *in.SaleType
			// Changing the type invalidates fields the new type does not carry.
			if !ts.HasValue {
				sale.DiscountValue = nil
				sale.DiscountMode = ""
			}
			if !ts.HasNotes {
				sale.Notes = ""
			}
		}
	}
	if in.DiscountValue != nil {
		sale.DiscountValue = in.DiscountValue
	} else if in.clearDiscountValue {
		sale.DiscountValue = nil
	}
	if in.DiscountMode != nil {
		sale.DiscountMode = *in.DiscountMode
	} else if in.clearDiscountMode {
		sale.DiscountMode = ""
	}
	if in.Notes != nil {
		sale.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.StartDate != nil {
		if !dateRe.MatchString(*in.StartDate) {
			errs = append(errs, `"start_date" is required (YYYY-MM-DD format).`)
		} else {
			sale.StartDate = *in.StartDate
		}
	}
	if in.EndDate != nil {
		if !dateRe.MatchString(*in.EndDate) {
			errs = append(errs, `"end_date" is required (YYYY-MM-DD format).`)
		} else {
			sale.EndDate = *in.EndDate
		}
	}
	if in.SaleURL != nil {
		sale.SaleURL = strings.TrimSpace(*in.SaleURL)
	}
	if in.Status != nil {
		switch *in.Status {
		case models.StatusPending, models.StatusApproved, models.StatusRejected:
			sale.Status = *in.Status
		default:
			errs = append(errs, `"status" must be one of: pending, approved, rejected.`)
		}
	}
	if sale.StartDate > sale.EndDate {
		errs = append(errs, `"start_date" must not be after "end_date".`)
	}
	if ts, ok := SaleTypes[sale.SaleType]; ok {
		errs = append(errs, validateTypeFields(ts, sale.DiscountValue, sale.DiscountMode, sale.Notes)...)
	}
	if len(errs) > 0 {
		return nil, &services.ValidationError{Errors: errs}
	}

	if in.BrandID != nil && *in.BrandID != sale.BrandID {
		var brand models.Brand
		if err := s.db.First(&brand, "id = ?", *in.BrandID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, services.ErrNotFound
			}
			return nil, err
		}
		sale.BrandID = *in.BrandID
	}

	sale.UpdatedAt = time.Now()
	if err := s.db.Save(&sale).Error; err != nil {
		return nil, err
	}
	sale.Active = sale.IsActive(s.today())
	return &sale, nil
}

// Delete removes a sale. Admins may delete any sale; editors only their own.
func (s *Service) Delete(id string, actor auth.Actor) error {
	var sale models.Sale
	if err := s.db.First(&sale, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return services.ErrNotFound
		}
		return err
	}
	if !actor.IsAdmin() && sale.CreatedBy != actor.UserID {
		return services.ErrForbidden
	}
	return s.db.Delete(&models.Sale{}, "id = ?", id).Error
}

// SetStatus is the moderation transition. Admin only.
func (s *Service) SetStatus(id, status string, actor auth.Actor) (*models.Sale, error) {
	if !actor.IsAdmin() {
		return nil, services.ErrForbidden
	}
	var sale models.Sale
	if err := s.db.First(&sale, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	sale.Status = status
	sale.UpdatedAt = time.Now()
	if err := s.db.Save(&sale).Error; err != nil {
		return nil, err
	}
	s.lg.Infow("sale moderated", "sale_id", sale.ID, "status", status)
	sale.Active = sale.IsActive(s.today())
	return &sale, nil
}

func (s *Service) Approve(id string, actor auth.Actor) (*models.Sale, error) {
	return s.SetStatus(id, models.StatusApproved, actor)
}

func (s *Service) Reject(id string, actor auth.Actor) (*models.Sale, error) {
	return s.SetStatus(id, models.StatusRejected, actor)
}

// ListPublic returns approved sales with their brand, derived-active stamped.
func (s *Service) ListPublic() ([]models.Sale, error) {
	var out []models.Sale
	err := s.db.Preload("Brand").
		Where("status = ?", models.StatusApproved).
		Order("created_at desc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	s.stampActive(out)
	return out, nil
}

// ListFor is the dashboard scope: admins see everything, editors see only
// the sales they created.
func (s *Service) ListFor(actor auth.Actor) ([]models.Sale, error) {
	q := s.db.Preload("Brand").Order("created_at desc")
	if !actor.IsAdmin() {
		q = q.Where("created_by = ?", actor.UserID)
	}
	var out []models.Sale
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	s.stampActive(out)
	return out, nil
}

func (s *Service) stampActive(sales []models.Sale) {
	today := s.today()
	for i := range sales {
		sales[i].Active = sales[i].IsActive(today)
	}
}

// IncrementView bumps a sale's view counter in a single atomic statement.
func (s *Service) IncrementView(id string) error {
	return s.db.Model(&models.Sale{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (s *Service) IncrementFavorite(id string) error {
	return s.db.Model(&models.Sale{}).Where("id = ?", id).
		UpdateColumn("favorite_count", gorm.Expr("favorite_count + 1")).Error
}

// DecrementFavorite floors the counter at zero.
func (s *Service) DecrementFavorite(id string) error {
	return s.db.Model(&models.Sale{}).Where("id = ? AND favorite_count > 0", id).
		UpdateColumn("favorite_count", gorm.Expr("favorite_count - 1")).Error
}
