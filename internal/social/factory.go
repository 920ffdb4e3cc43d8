package social

import (
	"log/slog"
	"net/http"

	"github.com/dailylift/dailylift/internal/config"
	"github.com/dailylift/dailylift/internal/validation"
)

// NewPosters creates every provider whose credentials are present in configuration.
// tokens may be nil, in which case refreshed OAuth tokens live only for this run.
// An empty slice means nothing is configured.
func NewPosters(cfg *config.Config, tokens TokenStore) ([]Poster, error) {
	client := &http.Client{Timeout: cfg.SocialHTTPTimeout}
	site := cfg.SocialSiteURL

	var posters []Poster

	if cfg.IFTTTWebhookKey != "" {
		posters = append(posters, NewIFTTTPoster(client, cfg.IFTTTWebhookKey, cfg.IFTTTEvent, site))
	}

	if cfg.MastodonAccessToken != "" && cfg.MastodonInstanceURL != "" {
		if err := validation.ValidateURL("MASTODON_INSTANCE_URL", cfg.MastodonInstanceURL); err != nil {
			return nil, err
		}
		posters = append(posters, NewMastodonPoster(client, cfg.MastodonInstanceURL, cfg.MastodonAccessToken, site))
	}

	creds := TwitterCredentials{
		AccessToken:  cfg.TwitterAccessToken,
		RefreshToken: cfg.TwitterRefreshToken,
		ClientID:     cfg.TwitterClientID,
		ClientSecret: cfg.TwitterClientSecret,
	}
	if creds.AccessToken != "" || creds.canRefresh() {
		posters = append(posters, NewTwitterPoster(client, creds, site, tokens))
	}

	if cfg.WebhookURL != "" {
		if err := validation.ValidateURL("WEBHOOK_URL", cfg.WebhookURL); err != nil {
			return nil, err
		}
		webhook, err := NewWebhookPoster(client, cfg.WebhookURL, cfg.WebhookSecret, site)
		if err != nil {
			return nil, err
		}
		posters = append(posters, webhook)
	}

	if cfg.EmailTo != "" && (cfg.ResendAPIKey != "" || cfg.IsDevelopment()) {
		if err := validation.ValidateEmail("EMAIL_TO", cfg.EmailTo); err != nil {
			return nil, err
		}
		posters = append(posters, NewEmailPoster(cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailTo, site, cfg.IsDevelopment()))
	}

	names := make([]string, 0, len(posters))
	for _, p := range posters {
		names = append(names, p.Name())
	}
	slog.Info("initializing social providers", "providers", names)

	return posters, nil
}
