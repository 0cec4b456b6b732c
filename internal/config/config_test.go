package config

import (
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Set required JWT_SECRET
	os.Setenv("JWT_SECRET", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET")

	// Clear any other env vars that might interfere
	envVars := []string{
		"SERVER_ADDR", "SERVER_PORT", "LOG_LEVEL",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"JWT_ISSUER", "ACCESS_TOKEN_TTL",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_REQUESTS_PER_MINUTE", "RATE_LIMIT_WINDOW_MINUTES",
		"SECURITY_HEADERS_ENABLED", "MAX_REQUEST_BODY_SIZE",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Check defaults
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), "0.0.0.0:8080")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelInfo)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("DBHost = %q, want %q", cfg.DBHost, "localhost")
	}
	if cfg.DBPort != 25432 {
		t.Errorf("DBPort = %d, want %d", cfg.DBPort, 25432)
	}
	if cfg.DBName != "account_gate" {
		t.Errorf("DBName = %q, want %q", cfg.DBName, "account_gate")
	}
	if cfg.DBSSLMode != "disable" {
		t.Errorf("DBSSLMode = %q, want %q", cfg.DBSSLMode, "disable")
	}
	if cfg.JWTIssuer != "account-gate" {
		t.Errorf("JWTIssuer = %q, want %q", cfg.JWTIssuer, "account-gate")
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want %v", cfg.AccessTokenTTL, 15*time.Minute)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.RequestsPerMinute != 60 {
		t.Errorf("RateLimit = %+v, want enabled with 60 requests", cfg.RateLimit)
	}
	if !cfg.SecurityHeaders.Enabled {
		t.Error("SecurityHeaders should be enabled by default")
	}
	if cfg.Validation.MaxRequestBodySize != 1<<20 {
		t.Errorf("MaxRequestBodySize = %d, want %d", cfg.Validation.MaxRequestBodySize, 1<<20)
	}
}

func TestLoad_RequiredJWTSecret(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	_, err := Load()
	if err == nil {
		t.Error("Load should fail when JWT_SECRET is not set")
	}
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key")
	os.Setenv("RATE_LIMIT_REQUESTS_PER_MINUTE", "0")
	defer func() {
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("RATE_LIMIT_REQUESTS_PER_MINUTE")
	}()

	if _, err := Load(); err == nil {
		t.Error("Load should fail when rate limit is enabled with zero requests")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Setenv("JWT_SECRET", "custom-secret")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DB_HOST", "db.example.com")
	os.Setenv("ACCESS_TOKEN_TTL", "30m")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("RATE_LIMIT_ENABLED", "false")
	defer func() {
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("DB_HOST")
		os.Unsetenv("ACCESS_TOKEN_TTL")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("RATE_LIMIT_ENABLED")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServerPort != 9090 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 9090)
	}
	if cfg.DBHost != "db.example.com" {
		t.Errorf("DBHost = %q, want %q", cfg.DBHost, "db.example.com")
	}
	if cfg.AccessTokenTTL != 30*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want %v", cfg.AccessTokenTTL, 30*time.Minute)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelDebug)
	}
	if cfg.RateLimit.Enabled {
		t.Error("RateLimit should be disabled")
	}
}

func TestGetEnvInt_InvalidValue(t *testing.T) {
	os.Setenv("TEST_INT", "not-a-number")
	defer os.Unsetenv("TEST_INT")

	result := getEnvInt("TEST_INT", 42)
	if result != 42 {
		t.Errorf("getEnvInt should return default for invalid value, got %d", result)
	}
}

func TestGetEnvDuration_InvalidValue(t *testing.T) {
	os.Setenv("TEST_DURATION", "invalid")
	defer os.Unsetenv("TEST_DURATION")

	result := getEnvDuration("TEST_DURATION", 5*time.Minute)
	if result != 5*time.Minute {
		t.Errorf("getEnvDuration should return default for invalid value, got %v", result)
	}
}

func TestGetEnvBool_InvalidValue(t *testing.T) {
	os.Setenv("TEST_BOOL", "maybe")
	defer os.Unsetenv("TEST_BOOL")

	if !getEnvBool("TEST_BOOL", true) {
		t.Error("getEnvBool should return default for invalid value")
	}
}

func TestGetEnvLevel_InvalidValue(t *testing.T) {
	os.Setenv("TEST_LEVEL", "verbose")
	defer os.Unsetenv("TEST_LEVEL")

	if got := getEnvLevel("TEST_LEVEL", slog.LevelWarn); got != slog.LevelWarn {
		t.Errorf("getEnvLevel = %v, want %v", got, slog.LevelWarn)
	}
}
