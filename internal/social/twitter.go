package social

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"golang.org/x/oauth2"

	"github.com/dailylift/dailylift/internal/model"
)

const (
	twitterTweetsURL = "https://api.twitter.com/2/tweets"
	twitterTokenURL  = "https://api.twitter.com/2/oauth2/token"
)

// TwitterCredentials holds an OAuth 2.0 user context token and, optionally,
// what is needed to refresh it.
type TwitterCredentials struct {
	AccessToken  string
	RefreshToken string
	ClientID     string
	ClientSecret string
}

func (c TwitterCredentials) canRefresh() bool {
	return c.RefreshToken != "" && c.ClientID != ""
}

// TokenStore keeps refreshed OAuth tokens across runs. Twitter rotates the
// refresh token on every use, so the configured one only works once.
type TokenStore interface {
	Get(provider string) (*model.OAuthToken, error)
	Save(token *model.OAuthToken) error
}

type TwitterPoster struct {
	client    *http.Client
	tweetsURL string
	siteURL   string
}

// NewTwitterPoster builds a poster from creds. When tokens is non-nil and
// refresh is possible, a stored token wins over creds and every rotation is
// saved back.
func NewTwitterPoster(base *http.Client, creds TwitterCredentials, siteURL string, tokens TokenStore) *TwitterPoster {
	return newTwitterPoster(base, creds, siteURL, tokens, twitterTweetsURL, twitterTokenURL)
}

func newTwitterPoster(base *http.Client, creds TwitterCredentials, siteURL string, tokens TokenStore, tweetsURL, tokenURL string) *TwitterPoster {
	token := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		TokenType:    "Bearer",
	}
	if tokens != nil && creds.canRefresh() {
		token = storedToken(tokens, token)
	}

	var source oauth2.TokenSource
	switch {
	case creds.canRefresh():
		conf := &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		}
		// An empty access token forces a refresh on first use.
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		source = conf.TokenSource(ctx, token)
		if tokens != nil {
			source = &savingTokenSource{src: source, store: tokens, last: token.AccessToken}
		}
		slog.Debug("twitter token refresh enabled", "persisted", tokens != nil)
	case creds.AccessToken != "":
		source = oauth2.StaticTokenSource(token)
	default:
		return &TwitterPoster{tweetsURL: tweetsURL, siteURL: siteURL}
	}

	return &TwitterPoster{
		client: &http.Client{
			Timeout:   base.Timeout,
			Transport: &oauth2.Transport{Source: source, Base: base.Transport},
		},
		tweetsURL: tweetsURL,
		siteURL:   siteURL,
	}
}

func (p *TwitterPoster) Name() string {
	return model.ProviderTwitter
}

func (p *TwitterPoster) Post(ctx context.Context, quote model.CurrentQuote) error {
	if p.client == nil {
		return ErrNotConfigured
	}

	payload := map[string]string{"text": Format(quote, p.siteURL)}
	_, err := postJSON(ctx, p.client, p.tweetsURL, payload, nil)
	if err != nil {
		return fmt.Errorf("twitter post failed: %w", err)
	}
	return nil
}

func storedToken(tokens TokenStore, fallback *oauth2.Token) *oauth2.Token {
	saved, err := tokens.Get(model.ProviderTwitter)
	if err != nil {
		slog.Warn("failed to load stored twitter token", "error", err)
		return fallback
	}
	if saved == nil || saved.RefreshToken == "" {
		return fallback
	}

	token := &oauth2.Token{
		AccessToken:  saved.AccessToken,
		RefreshToken: saved.RefreshToken,
		TokenType:    saved.TokenType,
	}
	if saved.Expiry.Valid {
		token.Expiry = saved.Expiry.Time
	}
	slog.Debug("using stored twitter token", "updated_at", saved.UpdatedAt)
	return token
}

// savingTokenSource writes each new token to the store as it is issued.
type savingTokenSource struct {
	mu    sync.Mutex
	src   oauth2.TokenSource
	store TokenStore
	last  string
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	t, err := s.src.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if t.AccessToken == s.last {
		return t, nil
	}
	s.last = t.AccessToken

	saved := &model.OAuthToken{
		Provider:     model.ProviderTwitter,
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		Expiry:       sql.NullTime{Time: t.Expiry, Valid: !t.Expiry.IsZero()},
	}
	if err := s.store.Save(saved); err != nil {
		// the post can still go out; only the next run loses the rotation
		slog.Warn("failed to persist refreshed twitter token", "error", err)
	}
	return t, nil
}
