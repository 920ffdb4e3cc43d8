package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dailylift/dailylift/internal/model"
)

type OAuthTokenRepository interface {
	Get(provider string) (*model.OAuthToken, error)
	Save(token *model.OAuthToken) error
}

type oauthTokenRepository struct {
	db *sqlx.DB
}

func NewOAuthTokenRepository(db *sqlx.DB) OAuthTokenRepository {
	return &oauthTokenRepository{db: db}
}

// Get returns nil without error when nothing is stored for provider.
func (r *oauthTokenRepository) Get(provider string) (*model.OAuthToken, error) {
	var token model.OAuthToken
	query := `
		SELECT provider, access_token, refresh_token, token_type, expiry, updated_at
		FROM oauth_tokens
		WHERE provider = $1
	`
	err := r.db.Get(&token, query, provider)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *oauthTokenRepository) Save(token *model.OAuthToken) error {
	token.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO oauth_tokens (provider, access_token, refresh_token, token_type, expiry, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (provider) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			token_type = excluded.token_type,
			expiry = excluded.expiry,
			updated_at = excluded.updated_at
	`
	_, err := r.db.Exec(query,
		token.Provider,
		token.AccessToken,
		token.RefreshToken,
		token.TokenType,
		token.Expiry,
		token.UpdatedAt,
	)
	return err
}
