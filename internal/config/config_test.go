package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GEMINI_MODEL_ID", "")
	t.Setenv("TRANSCRIBE_LANGUAGE", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.GeminiModelID != "gemini-2.5-flash" {
		t.Fatalf("expected default gemini model, got %s", cfg.GeminiModelID)
	}
	if cfg.TranscribeLang != "es" {
		t.Fatalf("expected default transcription language es, got %s", cfg.TranscribeLang)
	}
	if cfg.TriageMaxTokens != 400 {
		t.Fatalf("expected default triage max tokens, got %d", cfg.TriageMaxTokens)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no CORS origins by default, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("TRIAGE_MAX_TOKENS", "250")
	t.Setenv("SENDGRID_FROM_NAME", "Clinica UTH")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://clinica.example.com, https://staging.example.com")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Fatalf("expected gemini key override, got %s", cfg.GeminiAPIKey)
	}
	if cfg.TriageMaxTokens != 250 {
		t.Fatalf("expected triage max tokens override, got %d", cfg.TriageMaxTokens)
	}
	if cfg.SendGridFromName != "Clinica UTH" {
		t.Fatalf("expected from name override, got %s", cfg.SendGridFromName)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://staging.example.com" {
		t.Fatalf("expected two CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
}
