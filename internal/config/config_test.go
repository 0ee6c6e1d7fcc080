package config

import (
	"testing"
)

func TestLoad_LocalSet(t *testing.T) {
	ResetForTest()
	t.Setenv("DB_PRODUCTION", "false")
	t.Setenv("DB_HOST_LOCAL", "localhost")
	t.Setenv("DB_PORT_LOCAL", "5432")
	t.Setenv("DB_USER_LOCAL", "dev")
	t.Setenv("DB_PASSWORD_LOCAL", "devpass")
	t.Setenv("DB_NAME_LOCAL", "musicbase")
	t.Setenv("JWT_SECRET", "mysecret")
	t.Setenv("PORT", "")
	t.Setenv("BCRYPT_SALTROUND", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Production {
		t.Errorf("expected local config, got production")
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Name != "musicbase" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.Server.Port != "5000" {
		t.Errorf("expected default port 5000, got %s", cfg.Server.Port)
	}
	if cfg.BcryptCost != 8 {
		t.Errorf("expected bcrypt cost 8, got %d", cfg.BcryptCost)
	}
}

func TestLoad_ProductionSet(t *testing.T) {
	ResetForTest()
	t.Setenv("DB_PRODUCTION", "true")
	t.Setenv("DB_HOST_PROD", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER_PROD", "svc")
	t.Setenv("DB_PASSWORD_PROD", "svcpass")
	t.Setenv("DB_NAME_PROD", "musicbase_prod")
	t.Setenv("JWT_SECRET", "mysecret")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Production {
		t.Errorf("expected production config")
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != "5433" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Server.Port)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	ResetForTest()
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Errorf("expected error for missing JWT_SECRET")
	}
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	ResetForTest()
	t.Setenv("JWT_SECRET", "mysecret")
	t.Setenv("BCRYPT_SALTROUND", "ten")
	if _, err := Load(); err == nil {
		t.Errorf("expected error for malformed BCRYPT_SALTROUND")
	}
}
