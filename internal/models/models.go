package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:editor" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Session struct {
	JTI       string     `gorm:"primaryKey;size:64" json:"jti"`
	UserID    string     `gorm:"type:uuid;index;not null" json:"user_id"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type Brand struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	WebsiteURL string    `json:"website_url,omitempty"`
	Category   string    `json:"category,omitempty"`
	LogoURL    string    `json:"logo_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Dates are stored as ISO YYYY-MM-DD strings; lexicographic order matches
// calendar order, so SQL range predicates stay portable across dialects.
type Sale struct {
	ID            string   `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID       string   `gorm:"type:uuid;index;not null" json:"brand_id"`
	Brand         *Brand   `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE" json:"brand,omitempty"`
	Title         string   `gorm:"not null" json:"title"`
	SaleType      string   `gorm:"not null" json:"sale_type"`
	DiscountValue *float64 `json:"discount_value"`
	DiscountMode  string   `json:"discount_mode,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	StartDate     string   `gorm:"size:10;not null" json:"start_date"`
	EndDate       string   `gorm:"size:10;index;not null" json:"end_date"`
	SaleURL       string   `json:"sale_url,omitempty"`
	Status        string   `gorm:"not null;default:pending;index" json:"status"`
	CreatedBy     string   `gorm:"type:uuid;not null" json:"created_by"`
	ViewCount     int64    `gorm:"not null;default:0" json:"view_count"`
	FavoriteCount int64    `gorm:"not null;default:0" json:"favorite_count"`
	// Derived on read against the current date, never persisted.
	Active    bool      `gorm:"-" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// IsActive reports whether today falls inside the sale's date range.
func (s *Sale) IsActive(today string) bool {
	return s.StartDate <= today && s.EndDate >= today
}

type ApiToken struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	TokenHash string    `gorm:"uniqueIndex;size:64;not null" json:"-"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *ApiToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
