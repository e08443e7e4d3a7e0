package handlers

import (
	"net/http"

	"firmlynk/internal/lifecycle"
	"firmlynk/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListProjects(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	projects, err := h.Query.ListProjectsForUser(user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProject(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	project, err := h.Query.GetProjectForUser(c.Param("id"), user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

type createProjectRequest struct {
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Status        models.ProjectStatus `json:"status"`
	ClientIDs     []string             `json:"clientIds"`
	InternalNotes string               `json:"internalNotes"`
}

func (h *Handler) CreateProject(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := h.Lifecycle.CreateProject(lifecycle.CreateProjectInput{
		FirmID:        user.FirmID,
		Name:          req.Name,
		Description:   req.Description,
		Status:        req.Status,
		ClientIDs:     req.ClientIDs,
		InternalNotes: req.InternalNotes,
	}, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

type updateProjectRequest struct {
	Name          *string               `json:"name"`
	Description   *string               `json:"description"`
	Status        *models.ProjectStatus `json:"status"`
	ClientIDs     *[]string             `json:"clientIds"`
	InternalNotes *string               `json:"internalNotes"`
}

func (h *Handler) UpdateProject(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	// writes are firm-scoped the same way reads are
	if _, err := h.Query.GetProjectForUser(c.Param("id"), user); err != nil {
		h.respondError(c, err)
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := h.Lifecycle.UpdateProject(c.Param("id"), lifecycle.UpdateProjectInput{
		Name:          req.Name,
		Description:   req.Description,
		Status:        req.Status,
		ClientIDs:     req.ClientIDs,
		InternalNotes: req.InternalNotes,
	}, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) ProjectActivity(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	entries, err := h.Query.ProjectActivity(c.Param("id"), user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
