package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/praiadomeio/app-ampm/internal/models"
)

// DuesMatrix godoc
// @Summary Grade de mensalidades
// @Description Retorna a grade associado x mês do ano informado
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param year query int false "Ano (padrão: ano atual)"
// @Param search query string false "Nome do associado"
// @Success 200 {object} models.DuesMatrix
// @Failure 400 {object} ErrorResponse
// @Router /payments/matrix [get]
func (h *Handlers) DuesMatrix(c *gin.Context) {
	year, ok := h.yearParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.DuesMatrix(year, c.Query("search")))
}

// PaymentCell godoc
// @Summary Consultar mensalidade
// @Description Retorna o registro de um associado em um mês e ano, usado ao abrir uma célula da grade
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param memberId query string true "ID do associado"
// @Param month query int true "Mês (0 a 11)"
// @Param year query int false "Ano (padrão: ano atual)"
// @Success 200 {object} models.Payment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payments/cell [get]
func (h *Handlers) PaymentCell(c *gin.Context) {
	memberID := c.Query("memberId")
	month, err := strconv.Atoi(c.Query("month"))
	if memberID == "" || err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "memberId and month are required"})
		return
	}
	if month < 0 || month > 11 {
		h.respondError(c, "payment_cell", models.ErrInvalidMonth)
		return
	}
	year, ok := h.yearParam(c)
	if !ok {
		return
	}

	payment, err := h.service.PaymentCell(memberID, month, year)
	if err != nil {
		h.respondError(c, "payment_cell", err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// UpsertPayment godoc
// @Summary Registrar mensalidade
// @Description Cria ou substitui o registro de um associado em um mês e ano
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param data body models.PaymentInput true "Dados da mensalidade"
// @Success 200 {object} models.Payment
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /payments/cell [put]
func (h *Handlers) UpsertPayment(c *gin.Context) {
	var input models.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	payment, err := h.service.UpsertPayment(c.Request.Context(), actor(c), input)
	if err != nil {
		h.respondError(c, "upsert_payment", err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// DeletePayment godoc
// @Summary Excluir mensalidade
// @Description Remove um registro de mensalidade após confirmar a senha
// @Tags payments
// @Accept json
// @Security BearerAuth
// @Param id path string true "ID da mensalidade"
// @Param data body models.DeleteRequest true "Senha de confirmação"
// @Success 204
// @Failure 401 {object} ErrorResponse "Senha incorreta"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payments/{id} [delete]
func (h *Handlers) DeletePayment(c *gin.Context) {
	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.DeletePayment(c.Request.Context(), actor(c), c.Param("id"), req.Password); err != nil {
		h.respondError(c, "delete_payment", err)
		return
	}
	c.Status(http.StatusNoContent)
}
