package booking

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rollinggrill/streetside/internal/config"
)

// NewModule returns the booking module options
func NewModule() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				func(db *gorm.DB) Repository {
					return NewRepository(db)
				},
			),
			fx.Annotate(
				func(config *config.AppConfig, log *zap.Logger) Mailer {
					return NewMailer(&config.Mail, log)
				},
			),
			fx.Annotate(
				func(config *config.AppConfig, log *zap.Logger) ChallengeVerifier {
					return NewChallengeVerifier(&config.Challenge, log)
				},
			),
			fx.Annotate(
				func(log *zap.Logger, repo Repository, mailer Mailer, verifier ChallengeVerifier) *Service {
					return NewService(log, repo, mailer, verifier)
				},
			),
			fx.Annotate(
				func(log *zap.Logger, svc *Service) *Handler {
					return NewHandler(log, svc)
				},
			),
		),
	)
}
