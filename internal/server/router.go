package server

import (
	"net/http"

	"firmlynk/internal/config"
	"firmlynk/internal/handlers"
	"firmlynk/internal/middleware"
	"firmlynk/internal/models"
	"firmlynk/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, s *store.Store, h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("firmlynk_session", sessionStore))
	r.Use(middleware.InjectUser(s))

	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/me", h.Me)

	// Projects: any firm member can read what the access filter allows;
	// only staff and admin create or edit.
	auth.GET("/projects", h.ListProjects)
	auth.GET("/projects/:id", h.GetProject)
	auth.GET("/projects/:id/activity", h.ProjectActivity)
	auth.POST("/projects",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		h.CreateProject,
	)
	auth.PATCH("/projects/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		h.UpdateProject,
	)

	auth.GET("/projects/:id/proposals", h.ListProjectProposals)
	auth.POST("/projects/:id/proposals",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		h.UpsertProposal,
	)
	auth.GET("/proposals", h.ListProposals)
	auth.GET("/proposals/:id", h.GetProposal)
	auth.POST("/proposals/:id/send",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		h.MarkProposalSent,
	)

	auth.GET("/projects/:id/invoices", h.ListProjectInvoices)
	auth.POST("/projects/:id/invoices",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		h.UpsertInvoice,
	)
	auth.GET("/invoices", h.ListInvoices)
	auth.GET("/invoices/:id", h.GetInvoice)
	auth.POST("/invoices/:id/status",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		h.UpdateInvoiceStatus,
	)

	auth.GET("/projects/:id/field-reports", h.ListProjectFieldReports)
	auth.POST("/projects/:id/field-reports",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		h.UpsertFieldReport,
	)
	auth.GET("/field-reports", h.ListFieldReports)
	auth.GET("/field-reports/:id", h.GetFieldReport)
	auth.POST("/field-reports/:id/status",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		h.UpdateFieldReportStatus,
	)
	auth.POST("/field-reports/draft-narrative",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		h.DraftNarrative,
	)

	auth.GET("/projects/:id/files", h.ListProjectFiles)
	auth.POST("/projects/:id/files",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		h.AddProjectFile,
	)
	auth.GET("/files", h.ListFiles)

	admin := auth.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.GET("/users", h.ListFirmUsers)
	admin.POST("/users", h.CreateUser)
	admin.GET("/firm", h.GetFirm)
	admin.PATCH("/firm", h.UpdateFirmSettings)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
