package auth

import (
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"salespark/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}, &models.Session{}, &models.ApiToken{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestNewAPIToken(t *testing.T) {
	raw, err := NewAPIToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(raw, "spk_") {
		t.Errorf("token %q missing spk_ prefix", raw)
	}
	if len(raw) != len("spk_")+64 {
		t.Errorf("token length = %d, want %d", len(raw), len("spk_")+64)
	}
	other, _ := NewAPIToken()
	if raw == other {
		t.Error("two generated tokens are identical")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	if HashToken("spk_abc") != HashToken("spk_abc") {
		t.Error("digest is not deterministic")
	}
	if HashToken("spk_abc") == HashToken("spk_abd") {
		t.Error("different tokens share a digest")
	}
	if len(HashToken("spk_abc")) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(HashToken("spk_abc")))
	}
}

func TestVerifyAPIToken(t *testing.T) {
	db := testDB(t)
	raw, _ := NewAPIToken()
	tok := models.ApiToken{UserID: "u1", Name: "ci", TokenHash: HashToken(raw), IsActive: true}
	if err := db.Create(&tok).Error; err != nil {
		t.Fatalf("seed token: %v", err)
	}
	// Only the digest is persisted.
	var stored models.ApiToken
	db.First(&stored, "id = ?", tok.ID)
	if stored.TokenHash == raw || strings.Contains(stored.TokenHash, "spk_") {
		t.Fatal("raw secret leaked into the store")
	}

	got, err := VerifyAPIToken(db, raw)
	if err != nil || got == nil {
		t.Fatalf("verify active token: got %v, err %v", got, err)
	}
	if got.UserID != "u1" {
		t.Errorf("user_id = %q, want u1", got.UserID)
	}

	if got, err := VerifyAPIToken(db, "spk_wrong"); err != nil || got != nil {
		t.Fatalf("unknown token: got %v, err %v", got, err)
	}

	db.Model(&models.ApiToken{}).Where("id = ?", tok.ID).Update("is_active", false)
	if got, err := VerifyAPIToken(db, raw); err != nil || got != nil {
		t.Fatalf("revoked token should not verify: got %v, err %v", got, err)
	}
}
