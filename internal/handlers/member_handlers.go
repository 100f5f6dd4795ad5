package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/praiadomeio/app-ampm/internal/models"
)

// ListMembers godoc
// @Summary Listar associados
// @Description Busca associados por nome ou CPF, filtrando pela situação
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param search query string false "Nome ou CPF"
// @Param status query string false "all, active ou inactive" Enums(all, active, inactive)
// @Success 200 {array} models.Member
// @Failure 400 {object} ErrorResponse
// @Router /members [get]
func (h *Handlers) ListMembers(c *gin.Context) {
	status := models.MemberStatusFilter(c.DefaultQuery("status", string(models.MemberStatusAll)))
	switch status {
	case models.MemberStatusAll, models.MemberStatusActive, models.MemberStatusInactive:
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status filter"})
		return
	}
	c.JSON(http.StatusOK, h.service.Members(c.Query("search"), status))
}

// GetMember godoc
// @Summary Obter associado
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do associado"
// @Success 200 {object} models.Member
// @Failure 404 {object} ErrorResponse
// @Router /members/{id} [get]
func (h *Handlers) GetMember(c *gin.Context) {
	member, err := h.service.Member(c.Param("id"))
	if err != nil {
		h.respondError(c, "get_member", err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// CreateMember godoc
// @Summary Cadastrar associado
// @Description Registra um novo associado com a data de adesão de hoje
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param data body models.MemberInput true "Dados do associado"
// @Success 201 {object} models.Member
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /members [post]
func (h *Handlers) CreateMember(c *gin.Context) {
	var input models.MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	input.ID = ""

	member, err := h.service.SaveMember(c.Request.Context(), actor(c), input)
	if err != nil {
		h.respondError(c, "create_member", err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateMember godoc
// @Summary Editar associado
// @Description Atualiza os dados de um associado mantendo quem o cadastrou
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do associado"
// @Param data body models.MemberInput true "Dados do associado"
// @Success 200 {object} models.Member
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /members/{id} [put]
func (h *Handlers) UpdateMember(c *gin.Context) {
	var input models.MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	input.ID = c.Param("id")

	member, err := h.service.SaveMember(c.Request.Context(), actor(c), input)
	if err != nil {
		h.respondError(c, "update_member", err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteMember godoc
// @Summary Excluir associado
// @Description Exclui um associado após confirmar a senha de quem pede. As mensalidades são mantidas.
// @Tags members
// @Accept json
// @Security BearerAuth
// @Param id path string true "ID do associado"
// @Param data body models.DeleteRequest true "Senha de confirmação"
// @Success 204
// @Failure 401 {object} ErrorResponse "Senha incorreta"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /members/{id} [delete]
func (h *Handlers) DeleteMember(c *gin.Context) {
	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.DeleteMember(c.Request.Context(), actor(c), c.Param("id"), req.Password); err != nil {
		h.respondError(c, "delete_member", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Directory godoc
// @Summary Catálogo de endereços
// @Description Agrupa os associados por rua, com link de mapa e telefone formatado
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param search query string false "Rua, bairro ou nome"
// @Success 200 {array} models.DirectoryStreet
// @Router /directory [get]
func (h *Handlers) Directory(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Directory(c.Query("search")))
}

// Birthdays godoc
// @Summary Próximos aniversários
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Birthday
// @Router /birthdays [get]
func (h *Handlers) Birthdays(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Birthdays())
}
