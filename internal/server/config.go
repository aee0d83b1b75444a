package server

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/rollinggrill/streetside/internal/config"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// envOverrides maps config keys to the environment variables that may
// override them. Secrets are only ever supplied this way in production.
var envOverrides = map[string]string{
	"database.password":    "DB_PASSWORD",
	"auth.jwt_secret":      "AUTH_JWT_SECRET",
	"auth.internal_secret": "AUTH_INTERNAL_SECRET",
	"mail.password":        "SMTP_PASSWORD",
	"challenge.secret":     "CHALLENGE_SECRET",
	"geocode.api_key":      "GEOCODE_API_KEY",
	"iam.project_id":       "IAM_PROJECT_ID",
}

func LoadConfig() (*config.AppConfig, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = EnvDevelopment
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath("./config/server")

	for key, envVar := range envOverrides {
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, fmt.Errorf("error binding env var %s: %w", envVar, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config config.AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Load environment-specific server overrides
	if envSettings := v.GetStringMap(fmt.Sprintf("server.%s", env)); len(envSettings) > 0 {
		if err := v.UnmarshalKey(fmt.Sprintf("server.%s", env), &config.Server); err != nil {
			return nil, fmt.Errorf("error unmarshaling env config: %w", err)
		}
	}

	return &config, nil
}
