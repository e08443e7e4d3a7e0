package handlers

import (
	"net/http"

	"firmlynk/internal/lifecycle"
	"firmlynk/internal/models"
	"firmlynk/internal/narrative"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListProjectFieldReports(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	reports, err := h.Query.ListFieldReportsByProject(c.Param("id"), user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *Handler) GetFieldReport(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	report, err := h.Query.GetFieldReportByID(c.Param("id"), user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type upsertFieldReportRequest struct {
	ID               string                    `json:"id"`
	ClientID         string                    `json:"clientId"`
	Title            string                    `json:"title"`
	UserEnteredNotes string                    `json:"userEnteredNotes"`
	AIDraftNarrative string                    `json:"aiDraftNarrative"`
	Photos           []models.FieldReviewPhoto `json:"photos"`
	Disclaimers      []string                  `json:"disclaimers"`
	Status           models.FieldReportStatus  `json:"status"`
}

func (h *Handler) UpsertFieldReport(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	projectID := c.Param("id")
	if _, err := h.Query.GetProjectForUser(projectID, user); err != nil {
		h.respondError(c, err)
		return
	}

	var req upsertFieldReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report, err := h.Lifecycle.UpsertFieldReport(lifecycle.UpsertFieldReportInput{
		ID:               req.ID,
		ProjectID:        projectID,
		ClientID:         req.ClientID,
		Title:            req.Title,
		UserEnteredNotes: req.UserEnteredNotes,
		AIDraftNarrative: req.AIDraftNarrative,
		Photos:           req.Photos,
		Disclaimers:      req.Disclaimers,
		Status:           req.Status,
		AuthorID:         user.ID,
	}, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type fieldReportStatusRequest struct {
	Status models.FieldReportStatus `json:"status"`
}

func (h *Handler) UpdateFieldReportStatus(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	if _, err := h.Query.GetFieldReportByID(c.Param("id"), user); err != nil {
		h.respondError(c, err)
		return
	}

	var req fieldReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report, err := h.Lifecycle.UpdateFieldReportStatus(c.Param("id"), req.Status, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type draftNarrativeRequest struct {
	Notes   string `json:"notes"`
	Context string `json:"context"`
}

// DraftNarrative proxies the drafting collaborator. The result is advisory:
// it only becomes part of a report when the editor saves it back through the
// upsert.
func (h *Handler) DraftNarrative(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}

	var req draftNarrativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	text, err := h.Drafter.Draft(c.Request.Context(), narrative.DraftInput{
		Notes:   req.Notes,
		Context: req.Context,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"narrative": text})
}
