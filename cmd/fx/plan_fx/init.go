package plan_fx

import (
	"go.uber.org/fx"

	"subpay/internal/api/controllers"
	"subpay/internal/services"
)

var Module = fx.Provide(
	services.NewPlanService,
	controllers.NewPlanController,
)
