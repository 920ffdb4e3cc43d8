package social

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"

	"github.com/dailylift/dailylift/internal/model"
)

// EmailPoster mails the formatted quote to a list address through Resend.
// In development it only logs what would have been sent.
type EmailPoster struct {
	client  *resend.Client
	from    string
	to      string
	siteURL string
	isDev   bool
}

func NewEmailPoster(apiKey, from, to, siteURL string, isDev bool) *EmailPoster {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailPoster{
		client:  client,
		from:    from,
		to:      to,
		siteURL: siteURL,
		isDev:   isDev,
	}
}

func (p *EmailPoster) Name() string {
	return model.ProviderEmail
}

func (p *EmailPoster) Post(ctx context.Context, quote model.CurrentQuote) error {
	subject := fmt.Sprintf("Today's Quote (%s)", quote.Date)
	body := Format(quote, p.siteURL)

	if p.isDev {
		slog.Info("email sent (dev mode)", "type", "daily_quote", "to", p.to, "subject", subject)
		return ErrDryRun
	}

	if p.client == nil || p.to == "" {
		return ErrNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    p.from,
		To:      []string{p.to},
		Subject: subject,
		Text:    body,
	}

	_, err := p.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send quote email: %w", err)
	}
	slog.Info("email sent", "type", "daily_quote", "to", p.to)
	return nil
}
