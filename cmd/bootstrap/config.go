package bootstrap

import (
	"venuebook/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.GatewayConfig { return cfg.Gateway },
		func(cfg config.Config) config.CalendarConfig { return cfg.Calendar },
	),
)
