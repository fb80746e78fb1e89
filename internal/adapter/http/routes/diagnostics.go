package routes

import (
	"comercial_moveis/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup, diagnosticsHandler *handlers.DiagnosticsHandler) {
	rg.GET("/ping", diagnosticsHandler.Ping)
	rg.GET("/diagnostics/backend", diagnosticsHandler.CheckBackend)
}
