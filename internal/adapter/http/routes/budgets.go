package routes

import (
	"comercial_moveis/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets = "/budgets"
	PathClients = "/clients"
)

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("/:budget_id", budgetHandler.GetBudget)
		budgets.PATCH("/:budget_id/approve", budgetHandler.ApproveBudget)
		budgets.PATCH("/:budget_id/reject", budgetHandler.RejectBudget)
		budgets.PATCH("/:budget_id/cancel", budgetHandler.CancelBudget)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("/:client_id/budgets", budgetHandler.ListByClient)
	}
}
