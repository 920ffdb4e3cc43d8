package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dailylift/dailylift/internal/model"
	"github.com/dailylift/dailylift/internal/repository"
	"github.com/dailylift/dailylift/internal/social"
)

// PostSummary counts provider outcomes for one PostAll run.
type PostSummary struct {
	Quote   model.CurrentQuote
	Sent    []string
	Skipped []string
	Failed  map[string]error
}

type SocialService struct {
	quotes  *QuoteService
	posters []social.Poster
	ledger  repository.SocialPostRepository // nil disables dedup and history
}

func NewSocialService(quotes *QuoteService, posters []social.Poster, ledger repository.SocialPostRepository) *SocialService {
	return &SocialService{
		quotes:  quotes,
		posters: posters,
		ledger:  ledger,
	}
}

// PostAll pushes the current quote to every provider. Only an unreadable current
// quote is an error; provider failures are logged, recorded and skipped.
func (s *SocialService) PostAll(ctx context.Context) (*PostSummary, error) {
	quote, err := s.quotes.Current()
	if err != nil {
		return nil, err
	}

	summary := &PostSummary{Quote: quote, Failed: map[string]error{}}
	slog.Info("prepared quote for social", "date", quote.Date, "author", quote.Author)

	if len(s.posters) == 0 {
		slog.Info("no social providers configured, skipping social media post")
		return summary, nil
	}

	for _, p := range s.posters {
		if s.alreadyPosted(p.Name(), quote.Date) {
			slog.Info("quote already posted, skipping", "provider", p.Name(), "date", quote.Date)
			summary.Skipped = append(summary.Skipped, p.Name())
			continue
		}

		err := p.Post(ctx, quote)
		s.record(p.Name(), quote, err)

		if errors.Is(err, social.ErrNotConfigured) {
			slog.Info("social provider not configured, skipping", "provider", p.Name())
			summary.Skipped = append(summary.Skipped, p.Name())
			continue
		}
		if errors.Is(err, social.ErrDryRun) {
			slog.Info("social provider in dry-run mode, nothing sent", "provider", p.Name())
			summary.Skipped = append(summary.Skipped, p.Name())
			continue
		}
		if err != nil {
			slog.Error("social post failed", "provider", p.Name(), "error", err)
			summary.Failed[p.Name()] = err
			continue
		}

		slog.Info("social post sent", "provider", p.Name())
		summary.Sent = append(summary.Sent, p.Name())
	}

	slog.Info("social media automation complete",
		"sent", len(summary.Sent),
		"skipped", len(summary.Skipped),
		"failed", len(summary.Failed),
	)
	return summary, nil
}

func (s *SocialService) alreadyPosted(provider, date string) bool {
	if s.ledger == nil {
		return false
	}
	posted, err := s.ledger.Posted(provider, date)
	if err != nil {
		slog.Warn("failed to check social ledger", "provider", provider, "error", err)
		return false
	}
	return posted
}

func (s *SocialService) record(provider string, quote model.CurrentQuote, postErr error) {
	if s.ledger == nil || errors.Is(postErr, social.ErrNotConfigured) || errors.Is(postErr, social.ErrDryRun) {
		return
	}

	entry := &model.SocialPost{
		Provider:  provider,
		QuoteDate: quote.Date,
		Text:      quote.Text,
		Status:    model.SocialPostStatusSent,
	}
	if postErr != nil {
		entry.Status = model.SocialPostStatusFailed
		entry.Error = postErr.Error()
	}

	err := s.ledger.Create(entry)
	if err != nil {
		slog.Warn("failed to record social post", "provider", provider, "error", err)
	}
}
