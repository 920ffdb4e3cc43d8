package quotes

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dailylift/dailylift/internal/model"
)

type ZenQuotesProvider struct {
	client *http.Client
	url    string
}

func NewZenQuotesProvider(client *http.Client, url string) *ZenQuotesProvider {
	return &ZenQuotesProvider{client: client, url: url}
}

func (p *ZenQuotesProvider) Name() string {
	return "zenquotes"
}

// Fetch expects a JSON array whose first element carries "q" and "a".
func (p *ZenQuotesProvider) Fetch(ctx context.Context) (model.Quote, error) {
	var data []struct {
		Q string `json:"q"`
		A string `json:"a"`
	}
	err := getJSON(ctx, p.client, p.url, &data)
	if err != nil {
		return model.Quote{}, err
	}

	if len(data) == 0 || strings.TrimSpace(data[0].Q) == "" {
		return model.Quote{}, fmt.Errorf("zenquotes: %w", ErrInvalidResponse)
	}

	return model.Quote{Text: data[0].Q, Author: authorOrUnknown(data[0].A)}, nil
}
