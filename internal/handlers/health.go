package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Verifica a disponibilidade do armazenamento
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *Handlers) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: h.now(),
		Services:  map[string]string{"store": "healthy"},
	}

	if err := h.service.Ping(ctx); err != nil {
		h.logger.Warn("store health check failed", zap.Error(err))
		response.Status = "unhealthy"
		response.Services["store"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	c.JSON(http.StatusOK, response)
}
