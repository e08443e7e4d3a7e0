package handlers

import (
	"net/http"

	"firmlynk/internal/lifecycle"
	"firmlynk/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListProjectProposals(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	proposals, err := h.Query.ListProposalsByProject(c.Param("id"), user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposals)
}

func (h *Handler) GetProposal(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	proposal, err := h.Query.GetProposalByID(c.Param("id"), user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

type upsertProposalRequest struct {
	ID          string                `json:"id"`
	ClientID    string                `json:"clientId"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	LineItems   models.LineItems      `json:"lineItems"`
	Status      models.ProposalStatus `json:"status"`
}

func (h *Handler) UpsertProposal(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	projectID := c.Param("id")
	if _, err := h.Query.GetProjectForUser(projectID, user); err != nil {
		h.respondError(c, err)
		return
	}

	var req upsertProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	proposal, err := h.Lifecycle.UpsertProposal(lifecycle.UpsertProposalInput{
		ID:          req.ID,
		ProjectID:   projectID,
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		LineItems:   req.LineItems,
		Status:      req.Status,
	}, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

func (h *Handler) MarkProposalSent(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	if _, err := h.Query.GetProposalByID(c.Param("id"), user); err != nil {
		h.respondError(c, err)
		return
	}

	proposal, err := h.Lifecycle.MarkProposalSent(c.Param("id"), user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}
