package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FinancePanel godoc
// @Summary Painel financeiro
// @Description Indicadores do ano, fluxo mensal e despesas por categoria
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param year query int false "Ano (padrão: ano atual)"
// @Success 200 {object} models.FinancePanel
// @Failure 400 {object} ErrorResponse
// @Router /finance [get]
func (h *Handlers) FinancePanel(c *gin.Context) {
	year, ok := h.yearParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.FinancePanel(year))
}

// Report godoc
// @Summary Relatório estratégico
// @Description Arrecadação mensal, operadores que mais cadastraram e atividade recente
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param year query int false "Ano (padrão: ano atual)"
// @Success 200 {object} models.Report
// @Failure 400 {object} ErrorResponse
// @Router /reports [get]
func (h *Handlers) Report(c *gin.Context) {
	year, ok := h.yearParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.Report(year))
}

// AuditSheet godoc
// @Summary Folha de auditoria
// @Description Meses pagos de cada associado ativo, com o dia do pagamento
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param year query int false "Ano (padrão: ano atual)"
// @Success 200 {object} models.AuditSheet
// @Failure 400 {object} ErrorResponse
// @Router /reports/audit-sheet [get]
func (h *Handlers) AuditSheet(c *gin.Context) {
	year, ok := h.yearParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.AuditSheet(year))
}

// Dashboard godoc
// @Summary Painel inicial
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Dashboard
// @Router /dashboard [get]
func (h *Handlers) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Dashboard())
}
