package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dailylift/dailylift/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	return &config.Config{
		AppEnv:            "production",
		SiteURL:           "https://example.com",
		SrcPath:           filepath.Join(root, "src"),
		ContentPath:       filepath.Join(root, "content"),
		DataPath:          filepath.Join(root, "data"),
		DistPath:          filepath.Join(root, "dist"),
		QuoteHTTPTimeout:  time.Second,
		SocialHTTPTimeout: time.Second,
		DBDriver:          "sqlite",
		DBConnection:      filepath.Join(root, ".data", "ledger.db"),
	}
}

func TestSocialServiceWithoutProvidersSkipsLedger(t *testing.T) {
	cfg := testConfig(t)
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if _, err := a.SocialService(); err != nil {
		t.Fatalf("SocialService: %v", err)
	}
	if a.DB != nil {
		t.Error("ledger opened with no providers configured")
	}
}

func TestSocialServiceOpensLedger(t *testing.T) {
	cfg := testConfig(t)
	cfg.WebhookURL = "http://127.0.0.1:1/hook"
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	os.MkdirAll(cfg.DataPath, 0755)
	os.WriteFile(filepath.Join(cfg.DataPath, "current-quote.json"), []byte(`{"date":"2025-01-01","text":"t","author":"a"}`), 0644)

	svc, err := a.SocialService()
	if err != nil {
		t.Fatalf("SocialService: %v", err)
	}
	if a.DB == nil {
		t.Fatal("ledger not opened")
	}

	summary, err := svc.PostAll(context.Background())
	if err != nil {
		t.Fatalf("PostAll: %v", err)
	}
	if summary.Failed["webhook"] == nil {
		t.Errorf("unreachable webhook should fail, summary = %+v", summary)
	}

	ledger, err := a.Ledger()
	if err != nil {
		t.Fatalf("Ledger: %v", err)
	}
	recent, err := ledger.Recent(5)
	if err != nil || len(recent) != 1 || recent[0].Status != "failed" {
		t.Errorf("recent = %+v, err = %v", recent, err)
	}
}

func TestSocialServiceOpensTokenStoreForTwitterRefresh(t *testing.T) {
	cfg := testConfig(t)
	cfg.TwitterRefreshToken = "refresh"
	cfg.TwitterClientID = "client"
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if _, err := a.SocialService(); err != nil {
		t.Fatalf("SocialService: %v", err)
	}
	if a.DB == nil {
		t.Fatal("token store not opened")
	}

	cfg = testConfig(t)
	cfg.TwitterRefreshToken = "refresh"
	cfg.TwitterClientID = "client"
	cfg.SocialLedgerDisabled = true
	b, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Close()

	if _, err := b.SocialService(); err != nil {
		t.Fatalf("SocialService: %v", err)
	}
	if b.DB != nil {
		t.Error("database opened with the ledger disabled")
	}
}
