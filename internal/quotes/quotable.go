package quotes

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dailylift/dailylift/internal/model"
)

type QuotableProvider struct {
	client *http.Client
	url    string
}

func NewQuotableProvider(client *http.Client, url string) *QuotableProvider {
	return &QuotableProvider{client: client, url: url}
}

func (p *QuotableProvider) Name() string {
	return "quotable"
}

func (p *QuotableProvider) Fetch(ctx context.Context) (model.Quote, error) {
	var data struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	}
	err := getJSON(ctx, p.client, p.url, &data)
	if err != nil {
		return model.Quote{}, err
	}

	if strings.TrimSpace(data.Content) == "" {
		return model.Quote{}, fmt.Errorf("quotable: %w", ErrInvalidResponse)
	}

	return model.Quote{Text: data.Content, Author: authorOrUnknown(data.Author)}, nil
}
