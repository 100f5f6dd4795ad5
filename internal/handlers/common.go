package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/praiadomeio/app-ampm/internal/auth"
	"github.com/praiadomeio/app-ampm/internal/logging"
	"github.com/praiadomeio/app-ampm/internal/middleware"
	"github.com/praiadomeio/app-ampm/internal/models"
	"github.com/praiadomeio/app-ampm/internal/observability"
	"github.com/praiadomeio/app-ampm/internal/services"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports the state of the service and its store
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Handlers serves the association API
type Handlers struct {
	service *services.AssociationService
	tokens  *auth.TokenMaker
	limiter *services.LoginLimiter
	logger  *logging.SafeLogger
	now     func() time.Time
}

// NewHandlers creates the API handlers
func NewHandlers(service *services.AssociationService, tokens *auth.TokenMaker, limiter *services.LoginLimiter) *Handlers {
	return &Handlers{
		service: service,
		tokens:  tokens,
		limiter: limiter,
		logger:  observability.Logger().Named("handlers"),
		now:     time.Now,
	}
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	var corrupt *models.CorruptStateError
	switch {
	case errors.As(err, &corrupt):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrInvalidPassword):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden),
		errors.Is(err, models.ErrProtectedUser):
		return http.StatusForbidden
	case errors.Is(err, models.ErrMemberNotFound),
		errors.Is(err, models.ErrPaymentNotFound),
		errors.Is(err, models.ErrExpenseNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, models.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, models.ErrInvalidMonth),
		errors.Is(err, models.ErrInvalidCategory),
		errors.Is(err, models.ErrInvalidMethod),
		errors.Is(err, models.ErrPasswordMismatch),
		errors.Is(err, models.ErrPasswordTooShort),
		errors.Is(err, models.ErrPasswordTooLong),
		errors.Is(err, models.ErrPasswordRequired),
		errors.Is(err, models.ErrNotConfirmed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Internal errors are
// logged and replaced by a generic message.
func (h *Handlers) respondError(c *gin.Context, operation string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("operation", operation),
			zap.String("request_id", c.GetString("RequestID")),
			zap.Error(err))
		c.JSON(status, ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// badRequest rejects a malformed body or query
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
}

// actor returns the signed-in account. Routes using it sit behind AuthMiddleware.
func actor(c *gin.Context) models.User {
	user, _ := middleware.ActorFromContext(c)
	return user
}

// yearParam reads the year query parameter, defaulting to the current year
func (h *Handlers) yearParam(c *gin.Context) (int, bool) {
	raw := c.Query("year")
	if raw == "" {
		return h.now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1900 || year > 9999 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year"})
		return 0, false
	}
	return year, true
}
