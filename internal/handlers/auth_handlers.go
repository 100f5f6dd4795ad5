package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/praiadomeio/app-ampm/internal/models"
	"go.uber.org/zap"
)

// Login godoc
// @Summary Entrar
// @Description Autentica um usuário e devolve o token de sessão
// @Tags auth
// @Accept json
// @Produce json
// @Param data body models.LoginRequest true "Credenciais"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Usuário ou senha inválidos"
// @Failure 429 {object} ErrorResponse "Muitas tentativas"
// @Router /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if !h.limiter.Allow(req.Username) {
		h.respondError(c, "login", models.ErrRateLimited)
		return
	}

	user, err := h.service.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, "login", err)
		return
	}
	h.limiter.Reset(req.Username)

	token, expiresAt, err := h.tokens.Issue(user)
	if err != nil {
		h.respondError(c, "login", err)
		return
	}

	h.logger.Info("user signed in", zap.String("user_id", user.ID))
	c.JSON(http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      user.ToResponse(),
	})
}

// Me godoc
// @Summary Usuário atual
// @Description Retorna a conta da sessão
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *Handlers) Me(c *gin.Context) {
	c.JSON(http.StatusOK, actor(c).ToResponse())
}

// ChangePassword godoc
// @Summary Alterar senha
// @Description Troca a senha da conta da sessão
// @Tags auth
// @Accept json
// @Security BearerAuth
// @Param data body models.PasswordChange true "Senha atual e nova senha"
// @Success 204
// @Failure 400 {object} ErrorResponse "Senhas não conferem ou senha curta"
// @Failure 401 {object} ErrorResponse "Senha atual incorreta"
// @Router /auth/password [put]
func (h *Handlers) ChangePassword(c *gin.Context) {
	var req models.PasswordChange
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), actor(c), req); err != nil {
		h.respondError(c, "change_password", err)
		return
	}
	c.Status(http.StatusNoContent)
}
