package components

import (
	"context"

	"venuebook/internal/infra/calendar"
	"venuebook/internal/infra/gateway"
	"venuebook/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			gateway.NewRazorpayGateway,
			fx.As(new(commands.PaymentGateway)),
			fx.As(new(commands.SignatureVerifier)),
		),
		fx.Annotate(
			calendar.NewHTTPNotifier,
			fx.As(new(calendar.Notifier)),
		),
		calendar.NewDispatcher,
	),
	fx.Invoke(runCalendarDispatcher),
)

func runCalendarDispatcher(lc fx.Lifecycle, d *calendar.Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			d.Stop()
			return nil
		},
	})
}
