package model

import (
	"time"
)

const (
	SocialPostStatusSent   = "sent"
	SocialPostStatusFailed = "failed"
)

const (
	ProviderIFTTT    = "ifttt"
	ProviderMastodon = "mastodon"
	ProviderTwitter  = "twitter"
	ProviderWebhook  = "webhook"
	ProviderEmail    = "email"
)

// SocialPost is one ledger row: a single attempt to publish a dated quote to a provider.
type SocialPost struct {
	ID        string    `db:"id"`
	Provider  string    `db:"provider"`
	QuoteDate string    `db:"quote_date"`
	Text      string    `db:"text"`
	Status    string    `db:"status"`
	Error     string    `db:"error"`
	CreatedAt time.Time `db:"created_at"`
}
