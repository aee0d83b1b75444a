package iam

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/config"
)

// NewModule returns the iam module options
func NewModule() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				func(config *config.AppConfig, log *zap.Logger) *Client {
					return NewClient(&config.IAM, log)
				},
				fx.As(new(MemberLister)),
			),
		),
	)
}
