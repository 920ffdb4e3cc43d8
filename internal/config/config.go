package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppEnv  string
	SiteURL string
	Port    string

	// Content layout
	SrcPath     string
	ContentPath string
	DataPath    string
	DistPath    string
	IsDocker    bool // output dir is a mounted volume, never clean it

	// Ads (blog post pages)
	AdClient string
	AdSlot   string

	// Observability (optional)
	SentryDSN string

	// Quote providers
	QuoteHTTPTimeout time.Duration
	ZenQuotesURL     string
	QuotableURL      string

	// Social
	SocialSiteURL        string
	IFTTTWebhookKey      string
	IFTTTEvent           string
	MastodonAccessToken  string
	MastodonInstanceURL  string
	TwitterAccessToken   string
	TwitterRefreshToken  string
	TwitterClientID      string
	TwitterClientSecret  string
	WebhookURL           string
	WebhookSecret        string
	ResendAPIKey         string
	EmailFrom            string
	EmailTo              string
	SocialHTTPTimeout    time.Duration
	SocialLedgerDisabled bool

	// Ledger database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Storage (S3-compatible: MinIO, AWS S3, Cloudflare R2, DigitalOcean Spaces, etc.)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for S3-compatible services (MinIO, DO Spaces, R2, etc.)
	S3Prefix    string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	return &Config{
		// Application
		AppEnv:  envString("APP_ENV", "development"),
		SiteURL: envString("SITE_URL", "https://quickutils.top"),
		Port:    envString("PORT", "8090"),

		// Content layout
		SrcPath:     envString("SRC_PATH", "src"),
		ContentPath: envString("CONTENT_PATH", "content/blog"),
		DataPath:    envString("DATA_PATH", "data"),
		DistPath:    envString("DIST_PATH", "dist"),
		IsDocker:    envSet("IS_DOCKER"),

		// Ads
		AdClient: envString("AD_CLIENT", "ca-pub-5193703345853377"),
		AdSlot:   envString("AD_SLOT", "8571762456"),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Quote providers
		QuoteHTTPTimeout: envDuration("QUOTE_HTTP_TIMEOUT", 15*time.Second),
		ZenQuotesURL:     envString("ZENQUOTES_URL", "https://zenquotes.io/api/random"),
		QuotableURL:      envString("QUOTABLE_URL", "https://api.quotable.io/random"),

		// Social (every provider is optional, empty credentials disable it)
		SocialSiteURL:        envString("SOCIAL_SITE_URL", envString("SITE_URL", "https://dailylift.site")),
		IFTTTWebhookKey:      envString("IFTTT_WEBHOOK_KEY", ""),
		IFTTTEvent:           envString("IFTTT_EVENT", "daily_quote"),
		MastodonAccessToken:  envString("MASTODON_ACCESS_TOKEN", ""),
		MastodonInstanceURL:  envString("MASTODON_INSTANCE_URL", ""),
		TwitterAccessToken:   envString("TWITTER_ACCESS_TOKEN", envString("TWITTER_BEARER_TOKEN", "")),
		TwitterRefreshToken:  envString("TWITTER_REFRESH_TOKEN", ""),
		TwitterClientID:      envString("TWITTER_CLIENT_ID", ""),
		TwitterClientSecret:  envString("TWITTER_CLIENT_SECRET", ""),
		WebhookURL:           envString("WEBHOOK_URL", ""),
		WebhookSecret:        envString("WEBHOOK_SECRET", ""),
		ResendAPIKey:         envString("RESEND_API_KEY", ""),
		EmailFrom:            envString("EMAIL_FROM", "quotes@dailylift.site"),
		EmailTo:              envString("EMAIL_TO", ""),
		SocialHTTPTimeout:    envDuration("SOCIAL_HTTP_TIMEOUT", 30*time.Second),
		SocialLedgerDisabled: envBool("SOCIAL_LEDGER_DISABLED", false),

		// Ledger database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./.data/dailylift.db?_pragma=journal_mode(WAL)"),

		// Storage
		S3Region:    envString("S3_REGION", "us-east-1"),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
		S3Prefix:    envString("S3_PREFIX", ""),
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

// envSet reports whether key holds any non-empty value, "false" included.
func envSet(key string) bool {
	return os.Getenv(key) != ""
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// HasS3 reports whether a bucket is configured for publishing.
func (c *Config) HasS3() bool {
	return c.S3Bucket != ""
}
