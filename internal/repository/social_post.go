package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dailylift/dailylift/internal/model"
)

type SocialPostRepository interface {
	Create(post *model.SocialPost) error
	Posted(provider, quoteDate string) (bool, error)
	Recent(limit int) ([]model.SocialPost, error)
}

type socialPostRepository struct {
	db *sqlx.DB
}

func NewSocialPostRepository(db *sqlx.DB) SocialPostRepository {
	return &socialPostRepository{db: db}
}

func (r *socialPostRepository) Create(post *model.SocialPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO social_posts (id, provider, quote_date, text, status, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(query,
		post.ID,
		post.Provider,
		post.QuoteDate,
		post.Text,
		post.Status,
		post.Error,
		post.CreatedAt,
	)
	return err
}

// Posted reports whether provider already accepted the quote for quoteDate.
// Failed attempts do not count.
func (r *socialPostRepository) Posted(provider, quoteDate string) (bool, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM social_posts
		WHERE provider = $1 AND quote_date = $2 AND status = $3
	`
	err := r.db.Get(&count, query, provider, quoteDate, model.SocialPostStatusSent)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Recent returns the newest attempts first.
func (r *socialPostRepository) Recent(limit int) ([]model.SocialPost, error) {
	posts := []model.SocialPost{}
	query := `
		SELECT id, provider, quote_date, text, status, error, created_at
		FROM social_posts
		ORDER BY created_at DESC
		LIMIT $1
	`
	err := r.db.Select(&posts, query, limit)
	return posts, err
}
