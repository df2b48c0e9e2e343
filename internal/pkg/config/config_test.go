package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.Port)
	}
	if cfg.TokenTTL != 50*time.Minute {
		t.Fatalf("expected 50m default ttl, got %s", cfg.TokenTTL)
	}
	if cfg.Mongo.Database != "blog_platform" {
		t.Fatalf("unexpected default database: %s", cfg.Mongo.Database)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestValidate_MissingSecret(t *testing.T) {
	cfg := &Config{TokenTTL: time.Minute}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing JWT secret")
	}
}

func TestValidate_NonPositiveTTL(t *testing.T) {
	cfg := &Config{JWTSecret: "s", TokenTTL: 0}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for non-positive ttl")
	}
}
