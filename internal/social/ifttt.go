package social

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dailylift/dailylift/internal/model"
)

const iftttBaseURL = "https://maker.ifttt.com"

// IFTTTPoster triggers a Maker webhook event; the applet decides where it goes.
type IFTTTPoster struct {
	client  *http.Client
	baseURL string
	event   string
	key     string
	siteURL string
}

func NewIFTTTPoster(client *http.Client, key, event, siteURL string) *IFTTTPoster {
	return &IFTTTPoster{
		client:  client,
		baseURL: iftttBaseURL,
		event:   event,
		key:     key,
		siteURL: siteURL,
	}
}

func (p *IFTTTPoster) Name() string {
	return model.ProviderIFTTT
}

func (p *IFTTTPoster) Post(ctx context.Context, quote model.CurrentQuote) error {
	if p.key == "" {
		return ErrNotConfigured
	}

	url := fmt.Sprintf("%s/trigger/%s/with/key/%s", strings.TrimSuffix(p.baseURL, "/"), p.event, p.key)
	payload := map[string]string{
		"value1": quote.Text,
		"value2": quote.Author,
		"value3": p.siteURL,
	}

	_, err := postJSON(ctx, p.client, url, payload, nil)
	if err != nil {
		return fmt.Errorf("ifttt webhook failed: %w", err)
	}
	return nil
}
