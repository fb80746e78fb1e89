package routes

import (
	"comercial_moveis/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContracts = "/contracts"
	PathPayments  = "/payments"
)

func addContractRoutes(rg *gin.RouterGroup, contractHandler *handlers.ContractHandler, paymentHandler *handlers.ContractPaymentHandler) {
	contracts := rg.Group(PathContracts)
	{
		contracts.GET("/:contract_id", contractHandler.GetContract)
		contracts.PATCH("/:contract_id/sign", contractHandler.SignContract)
		contracts.PATCH("/:contract_id/cancel", contractHandler.CancelContract)

		contracts.POST("/:contract_id/payments/:method_id", paymentHandler.Charge)
		contracts.GET("/:contract_id/payments", paymentHandler.ListByContract)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.ContractPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}
}
