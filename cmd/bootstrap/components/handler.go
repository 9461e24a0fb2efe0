package components

import (
	"lendshare/internal/handler"
	"lendshare/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewBookingHandler,
		api.NewRequestHandler,
	),
	fx.Invoke(handler.NewRouter),
)
