package components

import (
	"context"

	"slotdesk/internal/handler"
	"slotdesk/internal/handler/api"
	"slotdesk/internal/handler/middleware"
	"slotdesk/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewResourceHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		newLoginRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func newLoginRateLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.RateLimiter {
	rl := middleware.NewRateLimiter(cfg.Server.LoginRateLimit, cfg.Server.LoginRateBurst)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			rl.Stop()
			return nil
		},
	})
	return rl
}
