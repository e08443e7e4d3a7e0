package handlers

import (
	"net/http"

	"firmlynk/internal/lifecycle"
	"firmlynk/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListFirmUsers(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	users, err := h.Query.ListUsersByFirm(user.FirmID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type createUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// CreateUser always creates inside the acting admin's own firm.
func (h *Handler) CreateUser(c *gin.Context) {
	admin := h.currentUser(c)
	if admin == nil {
		return
	}
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.Lifecycle.CreateUser(lifecycle.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		FirmID:   admin.FirmID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) GetFirm(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	firm, err := h.Query.GetFirmByID(user.FirmID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, firm)
}

type updateFirmRequest struct {
	Name         *string `json:"name"`
	LogoURL      *string `json:"logoUrl"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	Address      *string `json:"address"`
}

func (h *Handler) UpdateFirmSettings(c *gin.Context) {
	admin := h.currentUser(c)
	if admin == nil {
		return
	}
	var req updateFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	firm, err := h.Lifecycle.UpdateFirmSettings(admin.FirmID, lifecycle.UpdateFirmSettingsInput{
		Name:         req.Name,
		LogoURL:      req.LogoURL,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, firm)
}
