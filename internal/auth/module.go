package auth

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rollinggrill/streetside/internal/config"
	"github.com/rollinggrill/streetside/internal/iam"
)

// NewModule returns the auth module options
func NewModule() fx.Option {
	return fx.Options(
		fx.Provide(
			// Provide repository
			fx.Annotate(
				func(db *gorm.DB) Repository {
					return NewRepository(db)
				},
			),
			// Provide service
			fx.Annotate(
				func(config *config.AppConfig, log *zap.Logger, repo Repository) *Service {
					return NewService(&config.Auth, log, repo)
				},
			),
			// Provide gate
			fx.Annotate(
				func(log *zap.Logger, repo Repository, members iam.MemberLister) *Gate {
					return NewGate(log, repo, members)
				},
			),
			// Provide handler
			fx.Annotate(
				func(svc *Service, gate *Gate, log *zap.Logger) *Handler {
					return NewHandler(svc, gate, log)
				},
			),
			// Provide middleware
			fx.Annotate(
				func(config *config.AppConfig, log *zap.Logger, svc *Service, gate *Gate) *Middleware {
					return NewMiddleware(&config.Auth, log, svc, gate)
				},
			),
		),
	)
}
