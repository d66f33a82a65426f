package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/gophershop/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		NewAuthUseCase,
		NewCatalogUseCase,
		NewProductUseCase,
		NewCouponUseCase,
		NewCartUseCase,
		NewOrderUseCase,
	),
	fx.Provide(newOrderOptions),
)

func newOrderOptions(cfg *config.Config) OrderOptions {
	return OrderOptions{
		Currency:      cfg.Currency,
		SuccessURL:    cfg.PaymentSuccessURL,
		CancelURL:     cfg.PaymentCancelURL,
		InvoiceFolder: cfg.FileStoreFolder,
		Country:       "Egypt",
	}
}
