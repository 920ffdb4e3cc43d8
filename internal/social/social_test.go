package social

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	standardwebhooks "github.com/standard-webhooks/standard-webhooks/libraries/go"

	"github.com/dailylift/dailylift/internal/config"
	"github.com/dailylift/dailylift/internal/model"
)

var testQuote = model.CurrentQuote{Date: "2025-05-05", Text: "Stay curious.", Author: "Ada"}

type captured struct {
	path   string
	header http.Header
	body   []byte
}

func captureServer(t *testing.T, status int) (*httptest.Server, *captured) {
	t.Helper()
	c := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.path = r.URL.Path
		c.header = r.Header.Clone()
		c.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func TestFormat(t *testing.T) {
	got := Format(testQuote, "https://dailylift.site")
	want := "✨ Today's Quote:\n\n\"Stay curious.\"\n— Ada\n\n🌐 More at https://dailylift.site\n\n#motivation #quotes #dailyquotes #inspiration"
	if got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestIFTTTPoster(t *testing.T) {
	srv, c := captureServer(t, http.StatusOK)
	p := NewIFTTTPoster(srv.Client(), "secret-key", "daily_quote", "https://dailylift.site")
	p.baseURL = srv.URL

	if err := p.Post(context.Background(), testQuote); err != nil {
		t.Fatalf("Post: %v", err)
	}

	if c.path != "/trigger/daily_quote/with/key/secret-key" {
		t.Errorf("path = %q", c.path)
	}
	var body map[string]string
	if err := json.Unmarshal(c.body, &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["value1"] != "Stay curious." || body["value2"] != "Ada" || body["value3"] != "https://dailylift.site" {
		t.Errorf("body = %v", body)
	}
}

func TestIFTTTPosterNonSuccess(t *testing.T) {
	srv, _ := captureServer(t, http.StatusUnauthorized)
	p := NewIFTTTPoster(srv.Client(), "bad", "daily_quote", "https://dailylift.site")
	p.baseURL = srv.URL

	err := p.Post(context.Background(), testQuote)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusUnauthorized {
		t.Errorf("err = %v, want StatusError 401", err)
	}
}

func TestIFTTTPosterWithoutKey(t *testing.T) {
	p := NewIFTTTPoster(http.DefaultClient, "", "daily_quote", "x")
	if err := p.Post(context.Background(), testQuote); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestIFTTTPosterErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	closedURL := srv.URL
	srv.Close()

	p := NewIFTTTPoster(&http.Client{Timeout: time.Second}, "SUPERSECRETKEY", "daily_quote", "https://dailylift.site")
	p.baseURL = closedURL

	err := p.Post(context.Background(), testQuote)
	if err == nil {
		t.Fatal("expected error posting to a closed server")
	}
	if strings.Contains(err.Error(), "SUPERSECRETKEY") {
		t.Errorf("error leaks webhook key: %v", err)
	}
}

func TestStatusErrorKeepsRunesWhole(t *testing.T) {
	err := &StatusError{Code: http.StatusBadGateway, Body: strings.Repeat("é", 150)}

	msg := err.Error()
	if !utf8.ValidString(msg) {
		t.Errorf("message is not valid UTF-8: %q", msg)
	}
	if strings.Count(msg, "é") != 100 {
		t.Errorf("kept %d runes, want 100", strings.Count(msg, "é"))
	}
}

func TestMastodonPoster(t *testing.T) {
	srv, c := captureServer(t, http.StatusOK)
	p := NewMastodonPoster(srv.Client(), srv.URL+"/", "masto-token", "https://dailylift.site")

	if err := p.Post(context.Background(), testQuote); err != nil {
		t.Fatalf("Post: %v", err)
	}

	if c.path != "/api/v1/statuses" {
		t.Errorf("path = %q", c.path)
	}
	if got := c.header.Get("Authorization"); got != "Bearer masto-token" {
		t.Errorf("Authorization = %q", got)
	}
	key := c.header.Get("Idempotency-Key")
	if key == "" || key != idempotencyKey(strings.TrimSuffix(srv.URL, "/"), testQuote) {
		t.Errorf("Idempotency-Key = %q", key)
	}
	if !strings.Contains(string(c.body), "Stay curious.") {
		t.Errorf("body = %s", c.body)
	}
}

func TestTwitterPosterStaticToken(t *testing.T) {
	srv, c := captureServer(t, http.StatusCreated)
	p := newTwitterPoster(srv.Client(), TwitterCredentials{AccessToken: "tw-token"}, "https://dailylift.site", nil, srv.URL+"/2/tweets", srv.URL+"/token")

	if err := p.Post(context.Background(), testQuote); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if got := c.header.Get("Authorization"); got != "Bearer tw-token" {
		t.Errorf("Authorization = %q", got)
	}
	var body map[string]string
	json.Unmarshal(c.body, &body)
	if body["text"] != Format(testQuote, "https://dailylift.site") {
		t.Errorf("text = %q", body["text"])
	}
}

func TestTwitterPosterRefreshesToken(t *testing.T) {
	var auth string
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		if r.Form.Get("grant_type") != "refresh_token" || r.Form.Get("refresh_token") != "refresh-me" {
			t.Errorf("token form = %v", r.Form)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"fresh","token_type":"bearer","expires_in":7200}`))
	})
	mux.HandleFunc("/2/tweets", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	creds := TwitterCredentials{RefreshToken: "refresh-me", ClientID: "id", ClientSecret: "secret"}
	p := newTwitterPoster(srv.Client(), creds, "https://dailylift.site", nil, srv.URL+"/2/tweets", srv.URL+"/token")

	if err := p.Post(context.Background(), testQuote); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if auth != "Bearer fresh" {
		t.Errorf("Authorization = %q, want refreshed token", auth)
	}
}

type memTokens struct {
	saved map[string]model.OAuthToken
}

func (m *memTokens) Get(provider string) (*model.OAuthToken, error) {
	t, ok := m.saved[provider]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (m *memTokens) Save(token *model.OAuthToken) error {
	m.saved[token.Provider] = *token
	return nil
}

// rotatingTokenServer issues "access-N"/"refresh-N" pairs and records the
// refresh token each request presented.
func rotatingTokenServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var presented []string
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		presented = append(presented, r.Form.Get("refresh_token"))
		n := len(presented)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"access-%d","refresh_token":"refresh-%d","token_type":"bearer","expires_in":7200}`, n, n)
	})
	mux.HandleFunc("/2/tweets", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &presented
}

func TestTwitterPosterPersistsRotatedToken(t *testing.T) {
	srv, presented := rotatingTokenServer(t)
	store := &memTokens{saved: map[string]model.OAuthToken{}}
	creds := TwitterCredentials{RefreshToken: "from-env", ClientID: "id", ClientSecret: "secret"}

	p := newTwitterPoster(srv.Client(), creds, "https://dailylift.site", store, srv.URL+"/2/tweets", srv.URL+"/token")
	if err := p.Post(context.Background(), testQuote); err != nil {
		t.Fatalf("Post: %v", err)
	}

	saved, ok := store.saved[model.ProviderTwitter]
	if !ok {
		t.Fatal("refreshed token was not saved")
	}
	if saved.AccessToken != "access-1" || saved.RefreshToken != "refresh-1" || !saved.Expiry.Valid {
		t.Errorf("saved = %+v", saved)
	}

	// the next run starts from the stored token, not the spent one in creds
	p = newTwitterPoster(srv.Client(), creds, "https://dailylift.site", store, srv.URL+"/2/tweets", srv.URL+"/token")
	if err := p.Post(context.Background(), testQuote); err != nil {
		t.Fatalf("second Post: %v", err)
	}
	if len(*presented) != 1 || (*presented)[0] != "from-env" {
		t.Errorf("refresh tokens presented = %v, want only the env token while access-1 is valid", *presented)
	}
}

func TestTwitterPosterRefreshesWithStoredToken(t *testing.T) {
	srv, presented := rotatingTokenServer(t)
	store := &memTokens{saved: map[string]model.OAuthToken{
		model.ProviderTwitter: {
			Provider:     model.ProviderTwitter,
			AccessToken:  "expired",
			RefreshToken: "stored-refresh",
			Expiry:       sql.NullTime{Time: time.Now().Add(-time.Hour), Valid: true},
		},
	}}
	creds := TwitterCredentials{RefreshToken: "from-env", ClientID: "id"}

	p := newTwitterPoster(srv.Client(), creds, "https://dailylift.site", store, srv.URL+"/2/tweets", srv.URL+"/token")
	if err := p.Post(context.Background(), testQuote); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if len(*presented) != 1 || (*presented)[0] != "stored-refresh" {
		t.Errorf("refresh tokens presented = %v", *presented)
	}
	if got := store.saved[model.ProviderTwitter].RefreshToken; got != "refresh-1" {
		t.Errorf("stored refresh token = %q, want refresh-1", got)
	}
}

func TestTwitterPosterWithoutCredentials(t *testing.T) {
	p := NewTwitterPoster(http.DefaultClient, TwitterCredentials{}, "x", nil)
	if err := p.Post(context.Background(), testQuote); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestWebhookPosterSigned(t *testing.T) {
	srv, c := captureServer(t, http.StatusNoContent)
	secret := "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw"

	p, err := NewWebhookPoster(srv.Client(), srv.URL, secret, "https://dailylift.site")
	if err != nil {
		t.Fatalf("NewWebhookPoster: %v", err)
	}
	if err := p.Post(context.Background(), testQuote); err != nil {
		t.Fatalf("Post: %v", err)
	}

	verifier, err := standardwebhooks.NewWebhook(secret)
	if err != nil {
		t.Fatal(err)
	}
	if err := verifier.Verify(c.body, c.header); err != nil {
		t.Errorf("signature did not verify: %v", err)
	}

	var event WebhookEvent
	if err := json.Unmarshal(c.body, &event); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if event.Type != "quote.daily" || event.Data.Text != "Stay curious." || event.Data.Date != "2025-05-05" {
		t.Errorf("event = %+v", event)
	}
}

func TestWebhookPosterUnsigned(t *testing.T) {
	srv, c := captureServer(t, http.StatusOK)
	p, err := NewWebhookPoster(srv.Client(), srv.URL, "", "https://dailylift.site")
	if err != nil {
		t.Fatalf("NewWebhookPoster: %v", err)
	}
	p.now = func() time.Time { return time.Unix(0, 0) }

	if err := p.Post(context.Background(), testQuote); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if c.header.Get("webhook-signature") != "" {
		t.Error("unsigned webhook carried a signature")
	}
}

func TestEmailPosterDevMode(t *testing.T) {
	p := NewEmailPoster("", "from@example.com", "to@example.com", "https://dailylift.site", true)
	if err := p.Post(context.Background(), testQuote); !errors.Is(err, ErrDryRun) {
		t.Errorf("dev mode err = %v, want ErrDryRun", err)
	}

	p = NewEmailPoster("", "from@example.com", "to@example.com", "https://dailylift.site", false)
	if err := p.Post(context.Background(), testQuote); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestNewPosters(t *testing.T) {
	cfg := &config.Config{AppEnv: "production", SocialHTTPTimeout: time.Second}

	posters, err := NewPosters(cfg, nil)
	if err != nil {
		t.Fatalf("NewPosters: %v", err)
	}
	if len(posters) != 0 {
		t.Errorf("got %d posters with no credentials", len(posters))
	}

	cfg.IFTTTWebhookKey = "k"
	cfg.IFTTTEvent = "daily_quote"
	cfg.MastodonAccessToken = "m"
	cfg.MastodonInstanceURL = "https://mastodon.social"
	cfg.TwitterAccessToken = "t"
	cfg.WebhookURL = "https://hooks.example.com"
	cfg.ResendAPIKey = "re_123"
	cfg.EmailTo = "list@example.com"

	posters, err = NewPosters(cfg, nil)
	if err != nil {
		t.Fatalf("NewPosters: %v", err)
	}
	want := []string{model.ProviderIFTTT, model.ProviderMastodon, model.ProviderTwitter, model.ProviderWebhook, model.ProviderEmail}
	if len(posters) != len(want) {
		t.Fatalf("got %d posters, want %d", len(posters), len(want))
	}
	for i, name := range want {
		if posters[i].Name() != name {
			t.Errorf("posters[%d] = %s, want %s", i, posters[i].Name(), name)
		}
	}
}

func TestNewPostersRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*config.Config)
	}{
		{"webhook url", func(c *config.Config) { c.WebhookURL = "hooks.example.com" }},
		{"mastodon url", func(c *config.Config) {
			c.MastodonAccessToken = "m"
			c.MastodonInstanceURL = "mastodon.social"
		}},
		{"email", func(c *config.Config) {
			c.ResendAPIKey = "re_123"
			c.EmailTo = "nobody"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{AppEnv: "production", SocialHTTPTimeout: time.Second}
			tt.apply(cfg)
			if _, err := NewPosters(cfg, nil); err == nil {
				t.Error("expected a configuration error")
			}
		})
	}
}
