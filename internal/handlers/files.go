package handlers

import (
	"net/http"

	"firmlynk/internal/lifecycle"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListProjectFiles(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	files, err := h.Query.ListFilesByProject(c.Param("id"), user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

type addFileRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	URL      string `json:"url"`
}

func (h *Handler) AddProjectFile(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		return
	}
	projectID := c.Param("id")
	if _, err := h.Query.GetProjectForUser(projectID, user); err != nil {
		h.respondError(c, err)
		return
	}

	var req addFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	file, err := h.Lifecycle.AddProjectFile(lifecycle.AddProjectFileInput{
		ProjectID: projectID,
		FileName:  req.FileName,
		FileType:  req.FileType,
		URL:       req.URL,
	}, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, file)
}
