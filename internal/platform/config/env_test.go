package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port  int    `env:"NETOBS_TEST_PORT" envDefault:"123"`
	Queue string `env:"NETOBS_TEST_QUEUE"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvReadsValues(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("NETOBS_TEST_QUEUE", "eventdata")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Queue != "eventdata" {
		t.Fatalf("queue = %q, want %q", cfg.Queue, "eventdata")
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("NETOBS_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
