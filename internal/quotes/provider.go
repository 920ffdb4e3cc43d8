package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/dailylift/dailylift/internal/model"
)

const userAgent = "DailyLift/1.0"

// ErrInvalidResponse means a provider answered but without a usable quote.
var ErrInvalidResponse = errors.New("invalid response")

// Provider defines the interface that all quote sources must implement
type Provider interface {
	// Fetch returns one quote or an error; it never returns a partial quote
	Fetch(ctx context.Context) (model.Quote, error)

	// Name returns the provider name (e.g., "zenquotes", "quotable")
	Name() string
}

// getJSON fetches url and decodes the body into v.
func getJSON(ctx context.Context, client *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, url, truncate(string(body), 200))
	}

	err = json.Unmarshal(body, v)
	if err != nil {
		return fmt.Errorf("failed to parse response %q: %w", truncate(string(body), 200), err)
	}
	return nil
}

// truncate cuts s to at most n bytes, backing off to a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func authorOrUnknown(author string) string {
	author = strings.TrimSpace(author)
	if author == "" {
		return "Unknown"
	}
	return author
}
