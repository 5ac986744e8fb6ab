package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Errorf("default env = %q, want dev", cfg.Env)
	}
	if cfg.GeminiTextModel == "" || cfg.GeminiImageModel == "" {
		t.Error("expected default Gemini models")
	}
	if cfg.OBFAPIBase != "https://openbadgefactory.com" {
		t.Errorf("default OBF base = %q", cfg.OBFAPIBase)
	}
	if len(cfg.CORSAllowOrigin) == 0 {
		t.Error("expected default CORS origins")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "PRODUCTION")
	t.Setenv("OBF_BADGE_NAME", "Testimerkki")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Errorf("env = %q, want production", cfg.Env)
	}
	if cfg.OBFBadgeName != "Testimerkki" {
		t.Errorf("badge name = %q", cfg.OBFBadgeName)
	}
	if len(cfg.CORSAllowOrigin) != 2 {
		t.Errorf("origins = %v, want 2 entries", cfg.CORSAllowOrigin)
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"Production": "production",
		"staging":    "staging",
		"dev":        "dev",
		"anything":   "dev",
		"":           "dev",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Errorf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}
