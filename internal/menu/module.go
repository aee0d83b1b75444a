package menu

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rollinggrill/streetside/internal/config"
)

// NewModule returns the menu module options
func NewModule() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				func(db *gorm.DB) Repository {
					return NewRepository(db)
				},
			),
			fx.Annotate(
				func(config *config.AppConfig, log *zap.Logger) *ImageStore {
					return NewImageStore(&config.Storage, log)
				},
			),
			fx.Annotate(
				func(log *zap.Logger, repo Repository, images *ImageStore) *Service {
					return NewService(log, repo, images)
				},
			),
			fx.Annotate(
				func(svc *Service, log *zap.Logger) *Handler {
					return NewHandler(svc, log)
				},
			),
		),
	)
}
