package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"comercial_moveis/internal/usecase"
)

// DiagnosticsHandler reports on the service and the commercial backend it talks to.
type DiagnosticsHandler struct {
	usecase usecase.IDiagnosticsUseCase
}

func NewDiagnosticsHandler(uc usecase.IDiagnosticsUseCase) *DiagnosticsHandler {
	return &DiagnosticsHandler{usecase: uc}
}

// Ping godoc
// @Summary      Liveness check
// @Tags         diagnostics
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func (h *DiagnosticsHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// CheckBackend godoc
// @Summary      Probe the commercial backend
// @Description  Always 200; the report carries per-endpoint results.
// @Tags         diagnostics
// @Produce      json
// @Param        endpoints  query  string  false  "Comma separated paths, default /health and /api/v1/docs"
// @Success      200  {object}  usecase.BackendReport
// @Router       /diagnostics/backend [get]
func (h *DiagnosticsHandler) CheckBackend(c *gin.Context) {
	var paths []string
	if raw := c.Query("endpoints"); raw != "" {
		paths = lo.Compact(lo.Map(strings.Split(raw, ","), func(p string, _ int) string {
			return strings.TrimSpace(p)
		}))
	}
	c.JSON(http.StatusOK, h.usecase.CheckBackend(c.Request.Context(), paths))
}
