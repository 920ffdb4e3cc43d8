package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dailylift/dailylift/internal/db"
	"github.com/dailylift/dailylift/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conn, err := db.Init("sqlite", filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("db.Init: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestSocialPostRepository(t *testing.T) {
	repo := NewSocialPostRepository(newTestDB(t))

	posted, err := repo.Posted(model.ProviderIFTTT, "2025-01-01")
	if err != nil {
		t.Fatalf("Posted: %v", err)
	}
	if posted {
		t.Error("empty ledger reported a post")
	}

	failed := &model.SocialPost{
		Provider:  model.ProviderIFTTT,
		QuoteDate: "2025-01-01",
		Text:      "q",
		Status:    model.SocialPostStatusFailed,
		Error:     "HTTP status 500",
		CreatedAt: time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(failed); err != nil {
		t.Fatalf("Create failed post: %v", err)
	}
	if failed.ID == "" {
		t.Error("Create did not assign an ID")
	}

	posted, _ = repo.Posted(model.ProviderIFTTT, "2025-01-01")
	if posted {
		t.Error("failed attempt counted as posted")
	}

	sent := &model.SocialPost{
		Provider:  model.ProviderIFTTT,
		QuoteDate: "2025-01-01",
		Text:      "q",
		Status:    model.SocialPostStatusSent,
		CreatedAt: time.Date(2025, 1, 1, 7, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(sent); err != nil {
		t.Fatalf("Create sent post: %v", err)
	}

	posted, _ = repo.Posted(model.ProviderIFTTT, "2025-01-01")
	if !posted {
		t.Error("sent post not found")
	}
	posted, _ = repo.Posted(model.ProviderMastodon, "2025-01-01")
	if posted {
		t.Error("posted leaked across providers")
	}

	recent, err := repo.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != sent.ID || recent[1].Error != "HTTP status 500" {
		t.Errorf("recent = %+v", recent)
	}

	recent, _ = repo.Recent(1)
	if len(recent) != 1 {
		t.Errorf("limit ignored: %d rows", len(recent))
	}
}
