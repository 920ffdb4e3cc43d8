package app

import (
	"context"
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"

	"github.com/dailylift/dailylift/internal/config"
	"github.com/dailylift/dailylift/internal/db"
	"github.com/dailylift/dailylift/internal/progress"
	"github.com/dailylift/dailylift/internal/quotes"
	"github.com/dailylift/dailylift/internal/repository"
	"github.com/dailylift/dailylift/internal/service"
	"github.com/dailylift/dailylift/internal/social"
	"github.com/dailylift/dailylift/internal/storage"
)

type App struct {
	Cfg          *config.Config
	DB           *sqlx.DB // nil until a command needs the ledger
	BuildService *service.BuildService
	QuoteService *service.QuoteService
	QuoteFetcher *quotes.Fetcher
}

func New(cfg *config.Config) (*App, error) {
	buildService, err := service.NewBuildService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize build service: %w", err)
	}

	return &App{
		Cfg:          cfg,
		BuildService: buildService,
		QuoteService: service.NewQuoteService(cfg.DataPath),
		QuoteFetcher: quotes.NewFetcher(quotes.NewProviders(cfg)...),
	}, nil
}

func (a *App) openDB() error {
	if a.DB != nil {
		return nil
	}
	database, err := db.Init(a.Cfg.DBDriver, a.Cfg.DBConnection)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.DB = database
	return nil
}

// Ledger opens the social post database on first use.
func (a *App) Ledger() (repository.SocialPostRepository, error) {
	if err := a.openDB(); err != nil {
		return nil, err
	}
	return repository.NewSocialPostRepository(a.DB), nil
}

// SocialService wires the configured posters to the ledger unless it is disabled.
// The same database keeps rotated OAuth refresh tokens.
func (a *App) SocialService() (*service.SocialService, error) {
	var tokens social.TokenStore
	if !a.Cfg.SocialLedgerDisabled && a.Cfg.TwitterRefreshToken != "" {
		if err := a.openDB(); err != nil {
			return nil, err
		}
		tokens = repository.NewOAuthTokenRepository(a.DB)
	}

	posters, err := social.NewPosters(a.Cfg, tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize social providers: %w", err)
	}

	var ledger repository.SocialPostRepository
	if !a.Cfg.SocialLedgerDisabled && len(posters) > 0 {
		ledger, err = a.Ledger()
		if err != nil {
			return nil, err
		}
	}

	return service.NewSocialService(a.QuoteService, posters, ledger), nil
}

// PublishService uploads to the configured S3 bucket, reporting progress to w.
func (a *App) PublishService(ctx context.Context, w io.Writer) (*service.PublishService, error) {
	store, err := storage.NewS3(ctx, a.Cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return service.NewPublishService(store, progress.NewReporter(w)), nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
