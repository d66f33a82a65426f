package payment

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/gophershop/internal/config"
)

// Module exposes payment gateway client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.PaymentAddress, p.Config.PaymentAPIKey, p.Logger)
}
