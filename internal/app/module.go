package app

import (
	"context"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/auth"
	"github.com/rollinggrill/streetside/internal/booking"
	"github.com/rollinggrill/streetside/internal/database"
	"github.com/rollinggrill/streetside/internal/geocode"
	"github.com/rollinggrill/streetside/internal/iam"
	"github.com/rollinggrill/streetside/internal/menu"
	"github.com/rollinggrill/streetside/internal/schedule"
	"github.com/rollinggrill/streetside/internal/server"
	"github.com/rollinggrill/streetside/internal/social"
)

// Module combines all application modules
func Module() fx.Option {
	return fx.Options(
		// Logger
		fx.Provide(newLogger),

		// Configuration
		fx.Provide(server.LoadConfig),

		// Storage
		database.Module(),

		// Collaborator clients
		iam.NewModule(),

		// Domain modules
		auth.NewModule(),
		schedule.NewModule(),
		menu.NewModule(),
		booking.NewModule(),
		social.NewModule(),
		geocode.NewModule(),

		// Server
		fx.Provide(server.NewServer),

		// Start the server
		fx.Invoke(registerHooks),
	)
}

func newLogger() (*zap.Logger, error) {
	env := os.Getenv("APP_ENV")
	return server.NewLogger(env)
}

func registerHooks(
	lifecycle fx.Lifecycle,
	srv *server.Server,
	log *zap.Logger,
) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.Start(); err != nil {
					log.Error("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server...")
			srv.Stop()
			return nil
		},
	})
}
