package geocode

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/config"
)

// NewModule returns the geocode module options
func NewModule() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				func(config *config.AppConfig, log *zap.Logger) *Handler {
					return NewHandler(&config.Geocode, log)
				},
			),
		),
	)
}
