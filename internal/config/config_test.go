package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: "9090"
postgres:
  url: "postgres://u:p@localhost:5432/db?sslmode=disable"
redis:
  addr: "localhost:6379"
openai:
  model: "gpt-4o-mini"
  quiz_timeout: "10s"
courses:
  cache_ttl: "15m"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("port %q", cfg.Server.Port)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("redis addr %q", cfg.Redis.Addr)
	}
	if cfg.OpenAI.QuizTimeout != "10s" || cfg.Courses.CacheTTL != "15m" {
		t.Fatalf("timeouts not parsed: %+v", cfg)
	}
}

func TestLoadAPIKeyFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("openai:\n  api_key: \"\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("expected env key, got %q", cfg.OpenAI.APIKey)
	}
}

func TestTTLDuration(t *testing.T) {
	if got := TTLDuration("", time.Minute); got != time.Minute {
		t.Fatalf("empty: %v", got)
	}
	if got := TTLDuration("nonsense", time.Minute); got != time.Minute {
		t.Fatalf("malformed: %v", got)
	}
	if got := TTLDuration("90s", time.Minute); got != 90*time.Second {
		t.Fatalf("parsed: %v", got)
	}
}
