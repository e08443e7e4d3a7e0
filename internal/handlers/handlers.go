package handlers

import (
	"errors"
	"net/http"

	"firmlynk/internal/lifecycle"
	"firmlynk/internal/logger"
	"firmlynk/internal/middleware"
	"firmlynk/internal/models"
	"firmlynk/internal/narrative"
	"firmlynk/internal/query"
	"firmlynk/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler is the JSON action layer over the lifecycle manager and query
// facade. It owns no business rules: it binds input, resolves the acting
// user, and maps domain errors to status codes.
type Handler struct {
	Store     *store.Store
	Lifecycle *lifecycle.Manager
	Query     *query.Facade
	Drafter   narrative.Drafter
	Log       *logger.Logger
}

func New(s *store.Store, m *lifecycle.Manager, q *query.Facade, d narrative.Drafter, baseLog *logger.Logger) *Handler {
	return &Handler{
		Store:     s,
		Lifecycle: m,
		Query:     q,
		Drafter:   d,
		Log:       baseLog.With("component", "handlers"),
	}
}

func (h *Handler) currentUser(c *gin.Context) *models.User {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		// RequireAuth runs first on every route using this.
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil
	}
	return user
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	default:
		h.Log.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
