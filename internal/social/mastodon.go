package social

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/dailylift/dailylift/internal/model"
)

type MastodonPoster struct {
	client      *http.Client
	instanceURL string
	siteURL     string
}

// NewMastodonPoster authenticates every request with the account's access token.
func NewMastodonPoster(base *http.Client, instanceURL, accessToken, siteURL string) *MastodonPoster {
	var client *http.Client
	if accessToken != "" {
		client = &http.Client{
			Timeout: base.Timeout,
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}),
				Base:   base.Transport,
			},
		}
	}

	return &MastodonPoster{
		client:      client,
		instanceURL: strings.TrimSuffix(instanceURL, "/"),
		siteURL:     siteURL,
	}
}

func (p *MastodonPoster) Name() string {
	return model.ProviderMastodon
}

func (p *MastodonPoster) Post(ctx context.Context, quote model.CurrentQuote) error {
	if p.client == nil || p.instanceURL == "" {
		return ErrNotConfigured
	}

	header := http.Header{}
	header.Set("Idempotency-Key", idempotencyKey(p.instanceURL, quote))

	payload := map[string]string{
		"status":     Format(quote, p.siteURL),
		"visibility": "public",
	}

	_, err := postJSON(ctx, p.client, p.instanceURL+"/api/v1/statuses", payload, header)
	if err != nil {
		return fmt.Errorf("mastodon status failed: %w", err)
	}
	return nil
}

// idempotencyKey is stable per instance and quote so a retried post is not duplicated.
func idempotencyKey(scope string, quote model.CurrentQuote) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(scope+"|"+quote.Date+"|"+quote.Text)).String()
}
