package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/praiadomeio/app-ampm/internal/middleware"
)

// RegisterRoutes mounts the association API under /v1
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	v1 := router.Group("/v1")
	v1.GET("/health", h.HealthCheck)
	v1.POST("/auth/login", h.Login)

	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(h.tokens, h.service))
	{
		authed.GET("/auth/me", h.Me)
		authed.PUT("/auth/password", h.ChangePassword)

		authed.GET("/members", h.ListMembers)
		authed.GET("/members/:id", h.GetMember)
		authed.GET("/directory", h.Directory)
		authed.GET("/birthdays", h.Birthdays)
		authed.GET("/payments/matrix", h.DuesMatrix)
		authed.GET("/payments/cell", h.PaymentCell)
		authed.GET("/cashflow", h.CashFlow)
		authed.GET("/finance", h.FinancePanel)
		authed.GET("/reports", h.Report)
		authed.GET("/reports/audit-sheet", h.AuditSheet)
		authed.GET("/dashboard", h.Dashboard)
	}

	editor := authed.Group("")
	editor.Use(middleware.RequireEditor())
	{
		editor.POST("/members", h.CreateMember)
		editor.PUT("/members/:id", h.UpdateMember)
		editor.DELETE("/members/:id", h.DeleteMember)
		editor.PUT("/payments/cell", h.UpsertPayment)
		editor.DELETE("/payments/:id", h.DeletePayment)
		editor.POST("/expenses", h.CreateExpense)
		editor.DELETE("/expenses/:id", h.DeleteExpense)
	}

	admin := authed.Group("/users")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", h.ListUsers)
		admin.POST("", h.CreateUser)
		admin.PUT("/:id", h.UpdateUser)
		admin.DELETE("/:id", h.DeleteUser)
	}
}
