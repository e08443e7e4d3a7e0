// Package access restricts entity collections to what a given user may see.
// Every function is pure: deterministic, order-preserving, and never mutating
// its inputs.
package access

import "firmlynk/internal/models"

// CanSeeProject reports whether user may resolve project at all. Staff and
// admin see everything in their firm; clients must be named on the project.
func CanSeeProject(user *models.User, project *models.Project) bool {
	if user.FirmID != project.FirmID {
		return false
	}
	if user.Role == models.RoleClient {
		return project.ClientIDs.Contains(user.ID)
	}
	return true
}

func VisibleProjects(user *models.User, projects []models.Project) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if CanSeeProject(user, &p) {
			out = append(out, p)
		}
	}
	return out
}

func visibleProjectIDs(user *models.User, projects []models.Project) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, p := range VisibleProjects(user, projects) {
		ids[p.ID] = struct{}{}
	}
	return ids
}

func VisibleProposals(user *models.User, proposals []models.Proposal, projects []models.Project) []models.Proposal {
	allowed := visibleProjectIDs(user, projects)
	out := make([]models.Proposal, 0, len(proposals))
	for _, p := range proposals {
		if _, ok := allowed[p.ProjectID]; ok {
			out = append(out, p)
		}
	}
	return out
}

func VisibleInvoices(user *models.User, invoices []models.Invoice, projects []models.Project) []models.Invoice {
	allowed := visibleProjectIDs(user, projects)
	out := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if _, ok := allowed[inv.ProjectID]; ok {
			out = append(out, inv)
		}
	}
	return out
}

// VisibleReports additionally hides drafts from clients: a client only ever
// sees approved or sent reports, regardless of project visibility.
func VisibleReports(user *models.User, reports []models.FieldReviewReport, projects []models.Project) []models.FieldReviewReport {
	allowed := visibleProjectIDs(user, projects)
	out := make([]models.FieldReviewReport, 0, len(reports))
	for _, r := range reports {
		if _, ok := allowed[r.ProjectID]; !ok {
			continue
		}
		if user.Role == models.RoleClient && r.Status != models.FieldReportApproved && r.Status != models.FieldReportSent {
			continue
		}
		out = append(out, r)
	}
	return out
}

func VisibleFiles(user *models.User, files []models.ProjectFile, projects []models.Project) []models.ProjectFile {
	allowed := visibleProjectIDs(user, projects)
	out := make([]models.ProjectFile, 0, len(files))
	for _, f := range files {
		if _, ok := allowed[f.ProjectID]; ok {
			out = append(out, f)
		}
	}
	return out
}
