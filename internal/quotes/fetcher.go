package quotes

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dailylift/dailylift/internal/config"
	"github.com/dailylift/dailylift/internal/model"
)

// Attempt records one provider that failed during a fetch.
type Attempt struct {
	Provider string
	Err      error
}

// Result is the outcome of a fetch: the quote, which provider produced it and what failed before it.
type Result struct {
	Quote    model.Quote
	Provider string
	Failures []Attempt
}

// Fetcher tries providers in order until one returns a quote.
type Fetcher struct {
	providers []Provider
}

func NewFetcher(providers ...Provider) *Fetcher {
	return &Fetcher{providers: providers}
}

// NewProviders creates the default provider chain from configuration
func NewProviders(cfg *config.Config) []Provider {
	client := &http.Client{Timeout: cfg.QuoteHTTPTimeout}

	slog.Debug("initializing quote providers", "zenquotes", cfg.ZenQuotesURL, "quotable", cfg.QuotableURL)

	return []Provider{
		NewZenQuotesProvider(client, cfg.ZenQuotesURL),
		NewQuotableProvider(client, cfg.QuotableURL),
		NewFallbackProvider(),
	}
}

// Fetch never fails: when every provider errors the fixed fallback quote is returned.
func (f *Fetcher) Fetch(ctx context.Context) Result {
	var result Result

	for _, p := range f.providers {
		quote, err := p.Fetch(ctx)
		if err != nil {
			slog.Warn("quote provider failed", "provider", p.Name(), "error", err)
			result.Failures = append(result.Failures, Attempt{Provider: p.Name(), Err: err})
			continue
		}

		slog.Info("quote fetched", "provider", p.Name())
		result.Quote = quote
		result.Provider = p.Name()
		return result
	}

	slog.Info("all quote providers failed, using fallback quote")
	result.Quote = FallbackQuote
	result.Provider = "fallback"
	return result
}
