package social

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/config"
)

// NewModule returns the social module options
func NewModule() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				func(config *config.AppConfig, log *zap.Logger) *Client {
					return NewClient(&config.Social, log)
				},
			),
			fx.Annotate(
				func(client *Client, log *zap.Logger) *Handler {
					return NewHandler(client, log)
				},
			),
		),
	)
}
