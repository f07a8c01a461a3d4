package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Env != "local" {
		t.Errorf("expected local env, got %s", cfg.Env)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.KVMode != KVModeAuto {
		t.Errorf("expected kv auto mode, got %s", cfg.KVMode)
	}
	if cfg.Blob.Mode != BlobModeLocal {
		t.Errorf("expected local blob mode, got %s", cfg.Blob.Mode)
	}
	if cfg.AuthMode != "none" {
		t.Errorf("expected auth none, got %s", cfg.AuthMode)
	}
	if cfg.AIMode != "mock" {
		t.Errorf("expected mock AI mode, got %s", cfg.AIMode)
	}
	if cfg.ReportsMaxRangeDays != 90 {
		t.Errorf("expected 90-day report cap, got %d", cfg.ReportsMaxRangeDays)
	}
	if cfg.JWTTTLMinutes != 10080 {
		t.Errorf("expected one-week JWT TTL, got %d", cfg.JWTTTLMinutes)
	}

	// Local dev gets the frontend origins by default.
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Errorf("expected 2 default origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("PORT", "9090")
	t.Setenv("KV_MODE", "file")
	t.Setenv("KV_DATA_DIR", "/var/lib/stronger-body")
	t.Setenv("BLOB_MODE", "auto")
	t.Setenv("AUTH_MODE", "dev")
	t.Setenv("AUTH_REQUIRED", "1")
	t.Setenv("RATE_LIMIT_RPS", "25")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://beta.example.com")

	cfg := Load()

	if cfg.Env != "staging" || cfg.Port != 9090 {
		t.Errorf("env/port not read: %s/%d", cfg.Env, cfg.Port)
	}
	if cfg.KVMode != KVModeFile || cfg.KVDataDir != "/var/lib/stronger-body" {
		t.Errorf("kv settings not read: %s/%s", cfg.KVMode, cfg.KVDataDir)
	}
	if cfg.Blob.Mode != BlobModeAuto {
		t.Errorf("blob mode not read: %s", cfg.Blob.Mode)
	}
	if cfg.AuthMode != "dev" || !cfg.AuthRequired {
		t.Errorf("auth settings not read: %s/%t", cfg.AuthMode, cfg.AuthRequired)
	}
	if cfg.RateLimitRPS != 25 {
		t.Errorf("rate limit not read: %d", cfg.RateLimitRPS)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("origins not parsed: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadRejectsUnknownModes(t *testing.T) {
	t.Setenv("KV_MODE", "redis")
	t.Setenv("BLOB_MODE", "ftp")
	t.Setenv("AUTH_MODE", "oauth")
	t.Setenv("AI_MODE", "gemini")

	cfg := Load()

	if cfg.KVMode != KVModeAuto {
		t.Errorf("unknown KV mode must fall back to auto, got %s", cfg.KVMode)
	}
	if cfg.Blob.Mode != BlobModeLocal {
		t.Errorf("unknown blob mode must fall back to local, got %s", cfg.Blob.Mode)
	}
	if cfg.AuthMode != "none" {
		t.Errorf("unknown auth mode must fall back to none, got %s", cfg.AuthMode)
	}
	if cfg.AIMode != "mock" {
		t.Errorf("unknown AI mode must fall back to mock, got %s", cfg.AIMode)
	}
}

func TestAuthRequiredNeedsAuthMode(t *testing.T) {
	t.Setenv("AUTH_MODE", "none")
	t.Setenv("AUTH_REQUIRED", "1")

	if cfg := Load(); cfg.AuthRequired {
		t.Error("AUTH_REQUIRED must be ignored when auth mode is none")
	}
}

func TestS3ConfigMissingRequired(t *testing.T) {
	cfg := S3Config{Endpoint: "http://localhost:9000", Bucket: "reports"}
	missing := cfg.MissingRequired()
	if len(missing) != 3 {
		t.Fatalf("expected 3 missing vars, got %v", missing)
	}
	if cfg.IsConfigured() {
		t.Error("incomplete config must not report configured")
	}

	full := S3Config{
		Endpoint: "http://localhost:9000", Region: "us-east-1", Bucket: "reports",
		AccessKeyID: "key", SecretAccessKey: "secret",
	}
	if !full.IsConfigured() {
		t.Error("full config must report configured")
	}
}
