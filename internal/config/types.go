package config

import "time"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type AuthConfig struct {
	JWTSecret       string        `mapstructure:"jwt_secret"`
	TokenExpiration time.Duration `mapstructure:"token_expiration"`
	// LockoutThreshold is the failed-login count at which an account is
	// disabled. Zero falls back to the default of 3.
	LockoutThreshold int `mapstructure:"lockout_threshold"`
	// InternalSecret guards the login-failure endpoint; callers present it
	// in the X-Internal-Secret header.
	InternalSecret string `mapstructure:"internal_secret"`
}

type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	// BookingRecipient receives booking-request notifications.
	BookingRecipient string `mapstructure:"booking_recipient"`
}

// Configured reports whether an SMTP transport is usable.
func (c *MailConfig) Configured() bool {
	return c.Host != "" && c.BookingRecipient != ""
}

type StorageConfig struct {
	// ImageRoot is the filesystem root for uploaded menu images.
	ImageRoot string `mapstructure:"image_root"`
	// PublicBaseURL prefixes object paths when building image URLs.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type ChallengeConfig struct {
	VerifyURL string `mapstructure:"verify_url"`
	// Secret enables bot-challenge verification when non-empty.
	Secret string `mapstructure:"secret"`
}

type GeocodeConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
}

type SocialConfig struct {
	FeedURL string `mapstructure:"feed_url"`
}

type IAMConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	ProjectID string `mapstructure:"project_id"`
}

type AppConfig struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Mail      MailConfig      `mapstructure:"mail"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Challenge ChallengeConfig `mapstructure:"challenge"`
	Geocode   GeocodeConfig   `mapstructure:"geocode"`
	Social    SocialConfig    `mapstructure:"social"`
	IAM       IAMConfig       `mapstructure:"iam"`
}
