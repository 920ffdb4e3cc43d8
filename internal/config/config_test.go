package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"SITE_URL", "SOCIAL_SITE_URL", "IS_DOCKER", "DIST_PATH", "QUOTE_HTTP_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.SiteURL != "https://quickutils.top" {
		t.Errorf("SiteURL = %q, want https://quickutils.top", cfg.SiteURL)
	}
	if cfg.SocialSiteURL != "https://dailylift.site" {
		t.Errorf("SocialSiteURL = %q, want https://dailylift.site", cfg.SocialSiteURL)
	}
	if cfg.DistPath != "dist" {
		t.Errorf("DistPath = %q, want dist", cfg.DistPath)
	}
	if cfg.IsDocker {
		t.Error("IsDocker should default to false")
	}
	if cfg.QuoteHTTPTimeout != 15*time.Second {
		t.Errorf("QuoteHTTPTimeout = %v, want 15s", cfg.QuoteHTTPTimeout)
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SITE_URL", "https://example.com")
	t.Setenv("SOCIAL_SITE_URL", "")
	t.Setenv("IS_DOCKER", "1")
	t.Setenv("QUOTE_HTTP_TIMEOUT", "not-a-duration")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	if cfg.SiteURL != "https://example.com" {
		t.Errorf("SiteURL = %q", cfg.SiteURL)
	}
	if cfg.SocialSiteURL != "https://example.com" {
		t.Errorf("SocialSiteURL should follow SITE_URL, got %q", cfg.SocialSiteURL)
	}
	if !cfg.IsDocker {
		t.Error("any non-empty IS_DOCKER should enable docker mode")
	}
	if cfg.QuoteHTTPTimeout != 15*time.Second {
		t.Errorf("invalid duration should fall back to default, got %v", cfg.QuoteHTTPTimeout)
	}
	if cfg.IsDevelopment() {
		t.Error("APP_ENV=production should not be development")
	}
}
