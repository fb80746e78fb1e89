package routes

import (
	"comercial_moveis/internal/adapter/http/handlers"
	"comercial_moveis/internal/domain/budget"

	"github.com/gin-gonic/gin"
)

const (
	PathSimulations = "/simulations"
)

type exportViews struct {
	xlsx budget.View
	json budget.View
}

func addSimulationRoutes(
	rg *gin.RouterGroup,
	simulationHandler *handlers.SimulationHandler,
	budgetHandler *handlers.BudgetHandler,
	contractHandler *handlers.ContractHandler,
	views exportViews,
) {
	simulations := rg.Group(PathSimulations)
	{
		simulations.POST("", simulationHandler.Start)
		simulations.GET("/:session_id", simulationHandler.Get)
		simulations.DELETE("/:session_id", simulationHandler.End)

		simulations.PUT("/:session_id/client", simulationHandler.SetClient)
		simulations.PUT("/:session_id/environments", simulationHandler.SetEnvironments)
		simulations.PUT("/:session_id/payment-methods", simulationHandler.SetPaymentMethods)
		simulations.PUT("/:session_id/discount", simulationHandler.SetDiscount)

		simulations.GET("/:session_id/export.xlsx", simulationHandler.Export(views.xlsx))
		simulations.GET("/:session_id/export.json", simulationHandler.Export(views.json))

		simulations.POST("/:session_id/quote", budgetHandler.GenerateQuote)
		simulations.POST("/:session_id/contract", contractHandler.GenerateContract)
	}
}
