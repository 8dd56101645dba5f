package envconf

import (
	"errors"
	"testing"
	"time"
)

type nested struct {
	DSN string `env:"TEST_DSN"`
}

type sample struct {
	Port    uint16        `env:"TEST_PORT"`
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"15s"`
	Nested  nested
}

//nolint:paralleltest
func TestLoad_FromEnvAndDefaults(t *testing.T) {
	t.Setenv("TEST_PORT", "8080")
	t.Setenv("TEST_DSN", "postgres://localhost/db")

	cfg := new(sample)

	err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != 8080 {
		t.Fatalf("port: want 8080, got %d", cfg.Port)
	}
	if cfg.Timeout != 15*time.Second {
		t.Fatalf("timeout default: want 15s, got %v", cfg.Timeout)
	}
	if cfg.Nested.DSN != "postgres://localhost/db" {
		t.Fatalf("nested dsn: got %q", cfg.Nested.DSN)
	}
}

//nolint:paralleltest
func TestLoad_DefaultOverriddenByEnv(t *testing.T) {
	t.Setenv("TEST_PORT", "1")
	t.Setenv("TEST_DSN", "x")
	t.Setenv("TEST_TIMEOUT", "2m")

	cfg := new(sample)

	err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Timeout != 2*time.Minute {
		t.Fatalf("timeout: want 2m, got %v", cfg.Timeout)
	}
}

//nolint:paralleltest
func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("TEST_DSN", "x")
	// TEST_PORT intentionally unset

	err := Load(new(sample))
	if !errors.Is(err, ErrMissingRequired) {
		t.Fatalf("want ErrMissingRequired, got %v", err)
	}
}
