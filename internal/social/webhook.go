package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	standardwebhooks "github.com/standard-webhooks/standard-webhooks/libraries/go"

	"github.com/dailylift/dailylift/internal/model"
)

// WebhookEvent is the JSON body delivered to a generic webhook endpoint.
type WebhookEvent struct {
	Type string       `json:"type"`
	Data WebhookQuote `json:"data"`
}

type WebhookQuote struct {
	Date    string `json:"date"`
	Text    string `json:"text"`
	Author  string `json:"author"`
	SiteURL string `json:"site_url"`
	Status  string `json:"status"`
}

// WebhookPoster delivers the quote as a Standard Webhooks signed event.
// Without a secret the payload is sent unsigned.
type WebhookPoster struct {
	client  *http.Client
	url     string
	siteURL string
	signer  *standardwebhooks.Webhook
	now     func() time.Time
}

func NewWebhookPoster(client *http.Client, url, secret, siteURL string) (*WebhookPoster, error) {
	p := &WebhookPoster{
		client:  client,
		url:     url,
		siteURL: siteURL,
		now:     time.Now,
	}

	if secret == "" {
		return p, nil
	}

	var err error
	if strings.HasPrefix(secret, "whsec_") {
		p.signer, err = standardwebhooks.NewWebhook(secret)
	} else {
		p.signer, err = standardwebhooks.NewWebhookRaw([]byte(secret))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook signer: %w", err)
	}
	return p, nil
}

func (p *WebhookPoster) Name() string {
	return model.ProviderWebhook
}

func (p *WebhookPoster) Post(ctx context.Context, quote model.CurrentQuote) error {
	if p.url == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(WebhookEvent{
		Type: "quote.daily",
		Data: WebhookQuote{
			Date:    quote.Date,
			Text:    quote.Text,
			Author:  quote.Author,
			SiteURL: p.siteURL,
			Status:  Format(quote, p.siteURL),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to encode webhook event: %w", err)
	}

	header := http.Header{}
	if p.signer != nil {
		msgID := "msg_" + uuid.NewString()
		timestamp := p.now()

		signature, err := p.signer.Sign(msgID, timestamp, payload)
		if err != nil {
			return fmt.Errorf("failed to sign webhook: %w", err)
		}

		header.Set("webhook-id", msgID)
		header.Set("webhook-timestamp", strconv.FormatInt(timestamp.Unix(), 10))
		header.Set("webhook-signature", signature)
	}

	_, err = postRaw(ctx, p.client, p.url, payload, header)
	if err != nil {
		return fmt.Errorf("webhook delivery failed: %w", err)
	}
	return nil
}
