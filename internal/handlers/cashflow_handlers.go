package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/praiadomeio/app-ampm/internal/models"
)

// CashFlow godoc
// @Summary Livro caixa
// @Description Lista entradas (mensalidades pagas) e saídas (despesas), mais recentes primeiro
// @Tags cashflow
// @Produce json
// @Security BearerAuth
// @Param search query string false "Descrição, categoria ou responsável"
// @Param type query string false "income ou expense" Enums(income, expense)
// @Success 200 {object} models.CashFlow
// @Failure 400 {object} ErrorResponse
// @Router /cashflow [get]
func (h *Handlers) CashFlow(c *gin.Context) {
	var filter models.TransactionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, err)
		return
	}
	switch filter.Type {
	case "", models.TransactionIncome, models.TransactionExpense:
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid transaction type"})
		return
	}
	c.JSON(http.StatusOK, h.service.CashFlow(filter))
}

// CreateExpense godoc
// @Summary Lançar despesa
// @Tags cashflow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param data body models.ExpenseInput true "Dados da despesa"
// @Success 201 {object} models.Expense
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /expenses [post]
func (h *Handlers) CreateExpense(c *gin.Context) {
	var input models.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	expense, err := h.service.CreateExpense(c.Request.Context(), actor(c), input)
	if err != nil {
		h.respondError(c, "create_expense", err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// DeleteExpense godoc
// @Summary Excluir despesa
// @Description Remove uma despesa após confirmar a senha
// @Tags cashflow
// @Accept json
// @Security BearerAuth
// @Param id path string true "ID da despesa"
// @Param data body models.DeleteRequest true "Senha de confirmação"
// @Success 204
// @Failure 401 {object} ErrorResponse "Senha incorreta"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /expenses/{id} [delete]
func (h *Handlers) DeleteExpense(c *gin.Context) {
	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.DeleteExpense(c.Request.Context(), actor(c), c.Param("id"), req.Password); err != nil {
		h.respondError(c, "delete_expense", err)
		return
	}
	c.Status(http.StatusNoContent)
}
