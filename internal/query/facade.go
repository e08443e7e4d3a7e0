// Package query is the read side: it composes the entity store with the
// access filter so every result is already scoped to the requesting user.
// Nothing is cached; every call recomputes over the live store.
package query

import (
	"firmlynk/internal/access"
	"firmlynk/internal/logger"
	"firmlynk/internal/models"
	"firmlynk/internal/store"
)

type Facade struct {
	store *store.Store
	log   *logger.Logger
}

func New(s *store.Store, baseLog *logger.Logger) *Facade {
	return &Facade{store: s, log: baseLog.With("component", "query")}
}

func (f *Facade) firmProjects(user *models.User) ([]models.Project, error) {
	return f.store.ProjectsByFirm(user.FirmID)
}

// sanitizeProject hides staff-only fields from client users. Operates on the
// caller's copy, never on stored state.
func sanitizeProject(user *models.User, p models.Project) models.Project {
	if user.Role == models.RoleClient {
		p.InternalNotes = ""
	}
	return p
}

func (f *Facade) ListProjectsForUser(user *models.User) ([]models.Project, error) {
	projects, err := f.firmProjects(user)
	if err != nil {
		return nil, err
	}
	visible := access.VisibleProjects(user, projects)
	out := make([]models.Project, 0, len(visible))
	for _, p := range visible {
		out = append(out, sanitizeProject(user, p))
	}
	return out, nil
}

// GetProjectForUser resolves a project with its activity feed attached. An
// existing project the user may not see is reported as not found, so ids do
// not leak across firms.
func (f *Facade) GetProjectForUser(id string, user *models.User) (*models.Project, error) {
	project, err := f.store.ProjectByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil || !access.CanSeeProject(user, project) {
		return nil, models.ErrNotFound
	}
	sanitized := sanitizeProject(user, *project)
	entries, err := f.store.ProjectActivity(project.ID)
	if err != nil {
		return nil, err
	}
	sanitized.ActivityLog = entries
	return &sanitized, nil
}

func (f *Facade) ProjectActivity(projectID string, user *models.User) ([]models.ActivityLogEntry, error) {
	if _, err := f.GetProjectForUser(projectID, user); err != nil {
		return nil, err
	}
	return f.store.ProjectActivity(projectID)
}

func (f *Facade) ListProposalsForUser(user *models.User) ([]models.Proposal, error) {
	projects, err := f.firmProjects(user)
	if err != nil {
		return nil, err
	}
	proposals, err := f.store.ProposalsByFirm(user.FirmID)
	if err != nil {
		return nil, err
	}
	return access.VisibleProposals(user, proposals, projects), nil
}

func (f *Facade) ListProposalsByProject(projectID string, user *models.User) ([]models.Proposal, error) {
	if _, err := f.GetProjectForUser(projectID, user); err != nil {
		return nil, err
	}
	return f.store.ProposalsByProject(projectID)
}

func (f *Facade) GetProposalByID(id string, user *models.User) (*models.Proposal, error) {
	proposal, err := f.store.ProposalByID(id)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, models.ErrNotFound
	}
	if err := f.requireProjectVisible(proposal.ProjectID, user); err != nil {
		return nil, err
	}
	entries, err := f.store.EntityAudit(string(models.EntryProposal), proposal.ID)
	if err != nil {
		return nil, err
	}
	proposal.AuditLog = entries
	return proposal, nil
}

func (f *Facade) ListInvoicesForUser(user *models.User) ([]models.Invoice, error) {
	projects, err := f.firmProjects(user)
	if err != nil {
		return nil, err
	}
	invoices, err := f.store.InvoicesByFirm(user.FirmID)
	if err != nil {
		return nil, err
	}
	return access.VisibleInvoices(user, invoices, projects), nil
}

func (f *Facade) ListInvoicesByProject(projectID string, user *models.User) ([]models.Invoice, error) {
	if _, err := f.GetProjectForUser(projectID, user); err != nil {
		return nil, err
	}
	return f.store.InvoicesByProject(projectID)
}

func (f *Facade) GetInvoiceByID(id string, user *models.User) (*models.Invoice, error) {
	invoice, err := f.store.InvoiceByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, models.ErrNotFound
	}
	if err := f.requireProjectVisible(invoice.ProjectID, user); err != nil {
		return nil, err
	}
	entries, err := f.store.EntityAudit(string(models.EntryInvoice), invoice.ID)
	if err != nil {
		return nil, err
	}
	invoice.AuditLog = entries
	return invoice, nil
}

func (f *Facade) ListFieldReportsForUser(user *models.User) ([]models.FieldReviewReport, error) {
	projects, err := f.firmProjects(user)
	if err != nil {
		return nil, err
	}
	reports, err := f.store.FieldReportsByFirm(user.FirmID)
	if err != nil {
		return nil, err
	}
	return access.VisibleReports(user, reports, projects), nil
}

func (f *Facade) ListFieldReportsByProject(projectID string, user *models.User) ([]models.FieldReviewReport, error) {
	project, err := f.GetProjectForUser(projectID, user)
	if err != nil {
		return nil, err
	}
	reports, err := f.store.FieldReportsByProject(projectID)
	if err != nil {
		return nil, err
	}
	return access.VisibleReports(user, reports, []models.Project{*project}), nil
}

func (f *Facade) GetFieldReportByID(id string, user *models.User) (*models.FieldReviewReport, error) {
	report, err := f.store.FieldReportByID(id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, models.ErrNotFound
	}
	if err := f.requireProjectVisible(report.ProjectID, user); err != nil {
		return nil, err
	}
	if user.Role == models.RoleClient && report.Status != models.FieldReportApproved && report.Status != models.FieldReportSent {
		return nil, models.ErrNotFound
	}
	entries, err := f.store.EntityAudit(string(models.EntryFieldReport), report.ID)
	if err != nil {
		return nil, err
	}
	report.AuditLog = entries
	return report, nil
}

func (f *Facade) ListFilesForUser(user *models.User) ([]models.ProjectFile, error) {
	projects, err := f.firmProjects(user)
	if err != nil {
		return nil, err
	}
	visible := access.VisibleProjects(user, projects)
	ids := make([]string, 0, len(visible))
	for _, p := range visible {
		ids = append(ids, p.ID)
	}
	return f.store.FilesByProjects(ids)
}

func (f *Facade) ListFilesByProject(projectID string, user *models.User) ([]models.ProjectFile, error) {
	if _, err := f.GetProjectForUser(projectID, user); err != nil {
		return nil, err
	}
	return f.store.FilesByProject(projectID)
}

func (f *Facade) ListUsersByFirm(firmID string, roles ...models.Role) ([]models.User, error) {
	return f.store.UsersByFirm(firmID, roles...)
}

func (f *Facade) GetFirmByID(id string) (*models.Firm, error) {
	firm, err := f.store.FirmByID(id)
	if err != nil {
		return nil, err
	}
	if firm == nil {
		return nil, models.ErrNotFound
	}
	return firm, nil
}

func (f *Facade) requireProjectVisible(projectID string, user *models.User) error {
	project, err := f.store.ProjectByID(projectID)
	if err != nil {
		return err
	}
	if project == nil || !access.CanSeeProject(user, project) {
		return models.ErrNotFound
	}
	return nil
}
