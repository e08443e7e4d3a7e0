package handlers

import (
	"net/http"

	"firmlynk/internal/lifecycle"
	"firmlynk/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListProjectInvoices(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	invoices, err := h.Query.ListInvoicesByProject(c.Param("id"), user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *Handler) GetInvoice(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	invoice, err := h.Query.GetInvoiceByID(c.Param("id"), user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

type upsertInvoiceRequest struct {
	ID          string               `json:"id"`
	ClientID    string               `json:"clientId"`
	ProposalID  string               `json:"proposalId"`
	LineItems   models.LineItems     `json:"lineItems"`
	Taxes       float64              `json:"taxes"`
	Description string               `json:"description"`
	Notes       string               `json:"notes"`
	Status      models.InvoiceStatus `json:"status"`
}

func (h *Handler) UpsertInvoice(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	projectID := c.Param("id")
	if _, err := h.Query.GetProjectForUser(projectID, user); err != nil {
		h.respondError(c, err)
		return
	}

	var req upsertInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	invoice, err := h.Lifecycle.UpsertInvoice(lifecycle.UpsertInvoiceInput{
		ID:          req.ID,
		ProjectID:   projectID,
		ClientID:    req.ClientID,
		ProposalID:  req.ProposalID,
		LineItems:   req.LineItems,
		Taxes:       req.Taxes,
		Description: req.Description,
		Notes:       req.Notes,
		Status:      req.Status,
	}, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

type invoiceStatusRequest struct {
	Status models.InvoiceStatus `json:"status"`
}

func (h *Handler) UpdateInvoiceStatus(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	if _, err := h.Query.GetInvoiceByID(c.Param("id"), user); err != nil {
		h.respondError(c, err)
		return
	}

	var req invoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	invoice, err := h.Lifecycle.UpdateInvoiceStatus(c.Param("id"), req.Status, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}
