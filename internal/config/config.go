package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	OpenAI struct {
		APIKey        string `yaml:"api_key"`
		BaseURL       string `yaml:"base_url"`
		Model         string `yaml:"model"`
		QuizTimeout   string `yaml:"quiz_timeout"`
		CourseTimeout string `yaml:"course_timeout"`
		ChatTimeout   string `yaml:"chat_timeout"`
		RetryWait     string `yaml:"retry_wait"`
	} `yaml:"openai"`
	Courses struct {
		CacheTTL string `yaml:"cache_ttl"`
	} `yaml:"courses"`
}

// Load reads YAML config from path. The OpenAI key may also come from
// the OPENAI_API_KEY environment variable so it stays out of the file.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty
// or malformed.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
