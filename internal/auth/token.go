package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"gorm.io/gorm"

	"salespark/internal/models"
)

const tokenPrefix = "spk_"

// NewAPIToken generates a raw API token secret. The raw value is returned to
// the caller exactly once; only its digest is ever persisted.
func NewAPIToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return tokenPrefix + hex.EncodeToString(b), nil
}

// HashToken computes the SHA-256 hex digest under which a token is stored.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// VerifyAPIToken resolves a raw bearer credential to an active API token.
// A missing or revoked token is a normal outcome, not an error; only a store
// failure is returned as err.
func VerifyAPIToken(db *gorm.DB, raw string) (*models.ApiToken, error) {
	var tok models.ApiToken
	err := db.First(&tok, "token_hash = ? AND is_active = ?", HashToken(raw), true).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &tok, nil
}
