package config

import (
	"strings"
	"testing"
)

func TestDSNPrefersExplicitValue(t *testing.T) {
	env := Env{DBDSN: "u:p@tcp(db:3306)/x", DBUser: "ignored"}
	if got := env.DSN(); got != env.DBDSN {
		t.Fatalf("expected DB_DSN to win, got %s", got)
	}
}

func TestDSNFromParts(t *testing.T) {
	env := Env{DBUser: "root", DBPassword: "pw", DBHost: "127.0.0.1:3306", DBName: "travel_backoffice"}
	dsn := env.DSN()
	for _, part := range []string{"root:pw@tcp(127.0.0.1:3306)/travel_backoffice", "parseTime=true", "charset=utf8mb4"} {
		if !strings.Contains(dsn, part) {
			t.Fatalf("dsn %q missing %q", dsn, part)
		}
	}
}

func TestLoadEnvCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	env := LoadEnv()
	if len(env.CORSOrigins) != 2 || env.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", env.CORSOrigins)
	}
}

func TestLoadEnvBlankCORSFallsBack(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")
	if env := LoadEnv(); len(env.CORSOrigins) != len(defaultCORSOrigins) {
		t.Fatalf("expected default origins, got %v", env.CORSOrigins)
	}
}

func TestValidateRejectsDefaultSecretInRelease(t *testing.T) {
	env := Env{GinMode: "release", JWTSecret: defaultJWTSecret}
	if err := env.Validate(); err == nil {
		t.Fatalf("expected error for default secret in release mode")
	}
	env.JWTSecret = "a-real-secret"
	if err := env.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Env{GinMode: "debug", JWTSecret: defaultJWTSecret}).Validate(); err != nil {
		t.Fatalf("debug mode should accept the default secret: %v", err)
	}
}

func TestLoadEnvDefaultSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GIN_MODE", "release")
	if err := LoadEnv().Validate(); err == nil {
		t.Fatalf("release mode without JWT_SECRET must be refused")
	}
}
