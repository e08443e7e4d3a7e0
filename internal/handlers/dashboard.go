package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Firm-wide listings backing the dashboard. Everything is narrowed by the
// access filter before it leaves the query facade.

func (h *Handler) ListProposals(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	proposals, err := h.Query.ListProposalsForUser(user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposals)
}

func (h *Handler) ListInvoices(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	invoices, err := h.Query.ListInvoicesForUser(user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *Handler) ListFieldReports(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	reports, err := h.Query.ListFieldReportsForUser(user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *Handler) ListFiles(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	files, err := h.Query.ListFilesForUser(user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}
