package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "MONGODB_URI", "MONGO_DB", "OPENAI_API_KEY", "OPENAI_MODEL",
		"LINE_CHANNEL_ACCESS_TOKEN", "LINE_API_BASE", "BASE_URL", "BOT_MODE", "GIN_MODE",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.MongoDB != "projectlogdb" {
		t.Errorf("MongoDB = %q, want %q", cfg.MongoDB, "projectlogdb")
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q, want %q", cfg.OpenAIModel, "gpt-4o-mini")
	}
	if cfg.LineAPIBase != "https://api.line.me" {
		t.Errorf("LineAPIBase = %q, want %q", cfg.LineAPIBase, "https://api.line.me")
	}
	if cfg.Mode != ModeProjectLog {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeProjectLog)
	}
}

func TestLoadConfigCustomerMode(t *testing.T) {
	t.Setenv("BOT_MODE", "customer")

	if cfg := LoadConfig(); cfg.Mode != ModeCustomer {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeCustomer)
	}
}

func TestLoadConfigUnknownModeFallsBack(t *testing.T) {
	t.Setenv("BOT_MODE", "warehouse")

	if cfg := LoadConfig(); cfg.Mode != ModeProjectLog {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeProjectLog)
	}
}
