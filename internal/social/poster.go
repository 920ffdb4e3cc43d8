package social

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/dailylift/dailylift/internal/model"
)

// ErrNotConfigured is returned when a provider lacks the credentials it needs.
var ErrNotConfigured = errors.New("provider not configured")

// ErrDryRun is returned when a provider only logged the post instead of sending it.
var ErrDryRun = errors.New("dry run, nothing sent")

// Poster defines the interface that all social providers must implement
type Poster interface {
	// Post publishes the quote; a non-nil error means the provider rejected it or was unreachable
	Post(ctx context.Context, quote model.CurrentQuote) error

	// Name returns the provider name (e.g., "ifttt", "mastodon")
	Name() string
}

const hashtags = "#motivation #quotes #dailyquotes #inspiration"

// Format renders the status text shared by every text-based provider.
func Format(quote model.CurrentQuote, siteURL string) string {
	var b strings.Builder
	b.WriteString("✨ Today's Quote:\n\n")
	fmt.Fprintf(&b, "\"%s\"\n", quote.Text)
	fmt.Fprintf(&b, "— %s\n\n", quote.Author)
	fmt.Fprintf(&b, "🌐 More at %s\n\n", siteURL)
	b.WriteString(hashtags)
	return b.String()
}

// postJSON sends v as a JSON body and treats any non-2xx status as an error.
func postJSON(ctx context.Context, client *http.Client, endpoint string, v any, header http.Header) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return postRaw(ctx, client, endpoint, payload, header)
}

// postRaw never puts the endpoint in its errors; some providers carry keys in the URL.
func postRaw(ctx context.Context, client *http.Client, endpoint string, payload []byte, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.New("failed to create request: invalid endpoint URL")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return nil, fmt.Errorf("request failed: %s: %w", uerr.Op, uerr.Err)
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return body, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}

// StatusError reports a non-success HTTP response from a provider.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP status %d", e.Code)
	}
	return fmt.Sprintf("HTTP status %d: %s", e.Code, truncate(e.Body, 200))
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
