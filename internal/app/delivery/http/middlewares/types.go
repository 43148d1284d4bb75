package middlewares

import (
	"medirecord-service/internal/app/config"
	"medirecord-service/internal/app/services/shared/jwtmanager"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Middlewares struct {
	JWTManager     *jwtmanager.JWTManager
	InternalConfig *config.InternalConfig
	Log            *zap.Logger

	loginLimiter *rate.Limiter
}

func NewMiddlewares(jwtManager *jwtmanager.JWTManager, internalConfig *config.InternalConfig, logger *zap.Logger) *Middlewares {
	return &Middlewares{
		JWTManager:     jwtManager,
		InternalConfig: internalConfig,
		Log:            logger,
		loginLimiter: rate.NewLimiter(
			rate.Limit(internalConfig.App.LoginRatePerSecond),
			internalConfig.App.LoginBurst,
		),
	}
}
