package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/praiadomeio/app-ampm/internal/models"
)

// ListUsers godoc
// @Summary Listar usuários
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Nome ou usuário"
// @Success 200 {array} models.UserResponse
// @Failure 403 {object} ErrorResponse
// @Router /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Users(c.Query("search")))
}

// CreateUser godoc
// @Summary Criar usuário
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param data body models.UserInput true "Dados da conta"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Usuário já existe"
// @Router /users [post]
func (h *Handlers) CreateUser(c *gin.Context) {
	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	input.ID = ""

	user, err := h.service.SaveUser(c.Request.Context(), actor(c), input)
	if err != nil {
		h.respondError(c, "create_user", err)
		return
	}
	c.JSON(http.StatusCreated, user.ToResponse())
}

// UpdateUser godoc
// @Summary Editar usuário
// @Description Atualiza a conta. Senha vazia mantém a atual.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param data body models.UserInput true "Dados da conta"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Usuário já existe"
// @Router /users/{id} [put]
func (h *Handlers) UpdateUser(c *gin.Context) {
	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	input.ID = c.Param("id")

	user, err := h.service.SaveUser(c.Request.Context(), actor(c), input)
	if err != nil {
		h.respondError(c, "update_user", err)
		return
	}
	c.JSON(http.StatusOK, user.ToResponse())
}

// DeleteUser godoc
// @Summary Excluir usuário
// @Description Remove uma conta. O administrador principal não pode ser removido.
// @Tags users
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param confirm query bool true "Confirmação da exclusão"
// @Success 204
// @Failure 400 {object} ErrorResponse "Exclusão não confirmada"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [delete]
func (h *Handlers) DeleteUser(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	if err := h.service.DeleteUser(c.Request.Context(), actor(c), c.Param("id"), confirmed); err != nil {
		h.respondError(c, "delete_user", err)
		return
	}
	c.Status(http.StatusNoContent)
}
