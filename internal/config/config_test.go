package config

import "testing"

func TestDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/salespark_test")
	cfg := MustLoad()
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
	if cfg.ActiveSaleCap != 3 {
		t.Errorf("ActiveSaleCap = %d, want 3", cfg.ActiveSaleCap)
	}
	if !cfg.BrandNameUnique {
		t.Error("BrandNameUnique should default to true")
	}
}

func TestOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/salespark_test")
	t.Setenv("ACTIVE_SALE_CAP", "5")
	t.Setenv("BRAND_NAME_UNIQUE", "false")
	cfg := MustLoad()
	if cfg.ActiveSaleCap != 5 {
		t.Errorf("ActiveSaleCap = %d, want 5", cfg.ActiveSaleCap)
	}
	if cfg.BrandNameUnique {
		t.Error("BrandNameUnique should be off")
	}
}
