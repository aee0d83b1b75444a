package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/auth"
	"github.com/rollinggrill/streetside/internal/booking"
	"github.com/rollinggrill/streetside/internal/config"
	"github.com/rollinggrill/streetside/internal/geocode"
	"github.com/rollinggrill/streetside/internal/menu"
	"github.com/rollinggrill/streetside/internal/schedule"
	"github.com/rollinggrill/streetside/internal/social"
)

type Server struct {
	config *config.AppConfig
	log    *zap.Logger
	echo   *echo.Echo
}

type Params struct {
	fx.In

	Config          *config.AppConfig
	Logger          *zap.Logger
	AuthHandler     *auth.Handler
	AuthMiddleware  *auth.Middleware
	ScheduleHandler *schedule.Handler
	MenuHandler     *menu.Handler
	BookingHandler  *booking.Handler
	SocialHandler   *social.Handler
	GeocodeHandler  *geocode.Handler
}

func NewServer(p Params) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(p.Logger))

	registerRoutes(e, p)

	return &Server{
		config: p.Config,
		log:    p.Logger,
		echo:   e,
	}
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			log.Info("request", fields...)
			return nil
		},
	})
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.Server.Host, s.config.Server.Port)

	s.log.Info("Starting HTTP server", zap.String("address", addr))

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

func (s *Server) Stop() {
	s.log.Info("shutting down HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.log.Error("forced shutdown", zap.Error(err))
	}
}
