package model

import (
	"database/sql"
	"time"
)

// OAuthToken is the latest token a provider handed back on refresh.
type OAuthToken struct {
	Provider     string       `db:"provider"`
	AccessToken  string       `db:"access_token"`
	RefreshToken string       `db:"refresh_token"`
	TokenType    string       `db:"token_type"`
	Expiry       sql.NullTime `db:"expiry"`
	UpdatedAt    time.Time    `db:"updated_at"`
}
