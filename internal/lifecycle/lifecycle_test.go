package lifecycle_test

import (
	"errors"
	"testing"

	"firmlynk/internal/lifecycle"
	"firmlynk/internal/logger"
	"firmlynk/internal/models"
	"firmlynk/internal/store"
	"firmlynk/internal/store/storetest"
)

func newManager(t *testing.T) (*lifecycle.Manager, *store.Store) {
	t.Helper()
	s := storetest.New(t)
	storetest.SeedFirm(t, s, "firm-1", "Firm One")
	storetest.SeedUser(t, s, "u-staff-1", models.RoleStaff, "firm-1")
	storetest.SeedProject(t, s, "proj-1", "firm-1", "u-client-1")
	return lifecycle.New(s, logger.NewNop()), s
}

func TestCreateProjectDefaultsAndActivity(t *testing.T) {
	mgr, s := newManager(t)

	project, err := mgr.CreateProject(lifecycle.CreateProjectInput{
		FirmID:      "firm-1",
		Name:        "New Tower",
		Description: "desc",
	}, "u-staff-1")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if project.Status != models.ProjectPlanning {
		t.Fatalf("status = %s, want planning", project.Status)
	}
	if len(project.ActivityLog) != 1 || project.ActivityLog[0].Message != "Project created" {
		t.Fatalf("activity log = %+v, want one created entry", project.ActivityLog)
	}

	stored, err := s.ProjectByID(project.ID)
	if err != nil || stored == nil {
		t.Fatalf("created project not stored: %v", err)
	}
}

func TestUpdateProjectNotFound(t *testing.T) {
	mgr, _ := newManager(t)

	name := "renamed"
	_, err := mgr.UpdateProject("missing", lifecycle.UpdateProjectInput{Name: &name}, "u-staff-1")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpsertProposalComputesTotalAndAssignsLineItemIDs(t *testing.T) {
	mgr, _ := newManager(t)

	proposal, err := mgr.UpsertProposal(lifecycle.UpsertProposalInput{
		ProjectID: "proj-1",
		ClientID:  "u-client-1",
		Title:     "Design Services",
		LineItems: models.LineItems{
			{Description: "Workshops", Quantity: 4, UnitPrice: 2500},
			{Description: "SD package", Quantity: 1, UnitPrice: 18000},
		},
	}, "u-staff-1")
	if err != nil {
		t.Fatalf("UpsertProposal: %v", err)
	}

	if proposal.Status != models.ProposalDraft {
		t.Fatalf("status = %s, want draft", proposal.Status)
	}
	if proposal.Total != 28000 {
		t.Fatalf("total = %v, want 28000", proposal.Total)
	}
	for i, it := range proposal.LineItems {
		if it.ID == "" {
			t.Fatalf("line item %d has no id", i)
		}
	}
	if len(proposal.AuditLog) != 1 || proposal.AuditLog[0].Message != "Proposal created" {
		t.Fatalf("audit log = %+v, want one created entry", proposal.AuditLog)
	}
}

func TestUpsertProposalUpdatePreservesStatus(t *testing.T) {
	mgr, _ := newManager(t)

	created, err := mgr.UpsertProposal(lifecycle.UpsertProposalInput{
		ProjectID: "proj-1",
		ClientID:  "u-client-1",
		Title:     "v1",
		LineItems: models.LineItems{{Description: "a", Quantity: 1, UnitPrice: 100}},
	}, "u-staff-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := mgr.MarkProposalSent(created.ID, "u-staff-1"); err != nil {
		t.Fatalf("send: %v", err)
	}

	updated, err := mgr.UpsertProposal(lifecycle.UpsertProposalInput{
		ID:        created.ID,
		ProjectID: "proj-1",
		ClientID:  "u-client-1",
		Title:     "v2",
		LineItems: models.LineItems{{Description: "a", Quantity: 2, UnitPrice: 100}},
	}, "u-staff-1")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update allocated a new id: %s != %s", updated.ID, created.ID)
	}
	if updated.Status != models.ProposalSent {
		t.Fatalf("status = %s, want sent preserved across update", updated.Status)
	}
	if updated.Title != "v2" || updated.Total != 200 {
		t.Fatalf("content not overwritten: %+v", updated)
	}
}

func TestUpsertProposalRequiresLineItems(t *testing.T) {
	mgr, _ := newManager(t)

	_, err := mgr.UpsertProposal(lifecycle.UpsertProposalInput{
		ProjectID: "proj-1",
		ClientID:  "u-client-1",
		Title:     "empty",
	}, "u-staff-1")
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestUpsertProposalUnknownProject(t *testing.T) {
	mgr, _ := newManager(t)

	_, err := mgr.UpsertProposal(lifecycle.UpsertProposalInput{
		ProjectID: "missing",
		ClientID:  "u-client-1",
		Title:     "t",
		LineItems: models.LineItems{{Description: "a", Quantity: 1, UnitPrice: 1}},
	}, "u-staff-1")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestInvoiceTotalIncludesTaxes(t *testing.T) {
	mgr, _ := newManager(t)

	invoice, err := mgr.UpsertInvoice(lifecycle.UpsertInvoiceInput{
		ProjectID: "proj-1",
		ClientID:  "u-client-1",
		LineItems: models.LineItems{
			{Description: "a", Quantity: 2, UnitPrice: 100},
			{Description: "b", Quantity: 1, UnitPrice: 50},
		},
		Taxes: 10,
	}, "u-staff-1")
	if err != nil {
		t.Fatalf("UpsertInvoice: %v", err)
	}
	if invoice.Total != 260 {
		t.Fatalf("total = %v, want 260", invoice.Total)
	}
}

func TestInvoiceStatusTrustsRequestedTarget(t *testing.T) {
	mgr, _ := newManager(t)

	invoice, err := mgr.UpsertInvoice(lifecycle.UpsertInvoiceInput{
		ProjectID: "proj-1",
		ClientID:  "u-client-1",
		LineItems: models.LineItems{{Description: "a", Quantity: 1, UnitPrice: 100}},
	}, "u-staff-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// draft straight to paid is legal for invoices
	paid, err := mgr.UpdateInvoiceStatus(invoice.ID, models.InvoicePaid, "u-staff-1")
	if err != nil {
		t.Fatalf("draft->paid: %v", err)
	}
	if paid.Status != models.InvoicePaid {
		t.Fatalf("status = %s, want paid", paid.Status)
	}
	if paid.PaidAt == nil {
		t.Fatal("paidAt not stamped")
	}
	if paid.SentAt != nil {
		t.Fatal("sentAt stamped without entering sent")
	}
}

func TestInvoiceDoubleSendIsIdempotentAndAudited(t *testing.T) {
	mgr, _ := newManager(t)

	invoice, err := mgr.UpsertInvoice(lifecycle.UpsertInvoiceInput{
		ProjectID: "proj-1",
		ClientID:  "u-client-1",
		LineItems: models.LineItems{{Description: "a", Quantity: 1, UnitPrice: 100}},
	}, "u-staff-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := mgr.UpdateInvoiceStatus(invoice.ID, models.InvoiceSent, "u-staff-1")
	if err != nil {
		t.Fatalf("first send: %v", err)
	}
	second, err := mgr.UpdateInvoiceStatus(invoice.ID, models.InvoiceSent, "u-staff-1")
	if err != nil {
		t.Fatalf("second send: %v", err)
	}

	if first.Status != second.Status || second.Status != models.InvoiceSent {
		t.Fatalf("statuses diverged: %s vs %s", first.Status, second.Status)
	}
	// created + sent + sent
	if len(second.AuditLog) != 3 {
		t.Fatalf("audit log has %d entries, want 3", len(second.AuditLog))
	}
	if second.AuditLog[0].Message != "Invoice marked sent" || second.AuditLog[1].Message != "Invoice marked sent" {
		t.Fatalf("audit messages = %q, %q; want two identical sent entries", second.AuditLog[0].Message, second.AuditLog[1].Message)
	}
	if second.AuditLog[0].ID == second.AuditLog[1].ID {
		t.Fatal("audit entries share an id")
	}
}

func TestFieldReportDefaultsToDraft(t *testing.T) {
	mgr, _ := newManager(t)

	report, err := mgr.UpsertFieldReport(lifecycle.UpsertFieldReportInput{
		ProjectID:        "proj-1",
		ClientID:         "u-client-1",
		Title:            "Observation",
		UserEnteredNotes: "notes",
		AuthorID:         "u-staff-1",
	}, "u-staff-1")
	if err != nil {
		t.Fatalf("UpsertFieldReport: %v", err)
	}
	if report.Status != models.FieldReportDraft {
		t.Fatalf("status = %s, want draft", report.Status)
	}
	if report.AuthorID != "u-staff-1" {
		t.Fatalf("authorId = %s, want u-staff-1", report.AuthorID)
	}
}

func TestFieldReportSendRequiresApproval(t *testing.T) {
	mgr, s := newManager(t)

	report, err := mgr.UpsertFieldReport(lifecycle.UpsertFieldReportInput{
		ProjectID: "proj-1",
		ClientID:  "u-client-1",
		Title:     "Observation",
		AuthorID:  "u-staff-1",
	}, "u-staff-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	auditBefore, err := s.EntityAudit("field-report", report.ID)
	if err != nil {
		t.Fatalf("audit before: %v", err)
	}

	_, err = mgr.UpdateFieldReportStatus(report.ID, models.FieldReportSent, "u-staff-1")
	if !errors.Is(err, models.ErrInvalidTransition) {
		t.Fatalf("draft->sent err = %v, want ErrInvalidTransition", err)
	}

	// rejected transition leaves zero side effects
	unchanged, err := s.FieldReportByID(report.ID)
	if err != nil || unchanged == nil {
		t.Fatalf("reload: %v", err)
	}
	if unchanged.Status != models.FieldReportDraft {
		t.Fatalf("status mutated to %s on failed transition", unchanged.Status)
	}
	if unchanged.SentAt != nil {
		t.Fatal("sentAt stamped on failed transition")
	}
	auditAfter, err := s.EntityAudit("field-report", report.ID)
	if err != nil {
		t.Fatalf("audit after: %v", err)
	}
	if len(auditAfter) != len(auditBefore) {
		t.Fatalf("audit log grew from %d to %d on failed transition", len(auditBefore), len(auditAfter))
	}
}

func TestFieldReportApproveThenSend(t *testing.T) {
	mgr, _ := newManager(t)

	report, err := mgr.UpsertFieldReport(lifecycle.UpsertFieldReportInput{
		ProjectID: "proj-1",
		ClientID:  "u-client-1",
		Title:     "Observation",
		AuthorID:  "u-staff-1",
	}, "u-staff-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	approved, err := mgr.UpdateFieldReportStatus(report.ID, models.FieldReportApproved, "u-admin-1")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != models.FieldReportApproved {
		t.Fatalf("status = %s, want approved", approved.Status)
	}
	if approved.ApproverID != "u-admin-1" || approved.ApprovedAt == nil {
		t.Fatalf("approver not stamped: %+v", approved)
	}

	sent, err := mgr.UpdateFieldReportStatus(report.ID, models.FieldReportSent, "u-admin-1")
	if err != nil {
		t.Fatalf("send after approval: %v", err)
	}
	if sent.Status != models.FieldReportSent || sent.SentAt == nil {
		t.Fatalf("sent not stamped: %+v", sent)
	}
}

func TestDualRecordingOnEveryMutation(t *testing.T) {
	mgr, s := newManager(t)

	report, err := mgr.UpsertFieldReport(lifecycle.UpsertFieldReportInput{
		ProjectID: "proj-1",
		ClientID:  "u-client-1",
		Title:     "Observation",
		AuthorID:  "u-staff-1",
	}, "u-staff-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	audit, err := s.EntityAudit("field-report", report.ID)
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	feed, err := s.ProjectActivity("proj-1")
	if err != nil {
		t.Fatalf("feed: %v", err)
	}

	if len(audit) != 1 {
		t.Fatalf("audit has %d entries, want 1", len(audit))
	}
	var feedEntry *models.ActivityLogEntry
	for i := range feed {
		if feed[i].Related != nil && feed[i].Related.ID == report.ID {
			feedEntry = &feed[i]
			break
		}
	}
	if feedEntry == nil {
		t.Fatal("no activity feed entry for the new report")
	}
	if feedEntry.Message != audit[0].Message {
		t.Fatalf("feed message %q != audit message %q", feedEntry.Message, audit[0].Message)
	}
	if feedEntry.UserID != audit[0].UserID {
		t.Fatalf("feed actor %q != audit actor %q", feedEntry.UserID, audit[0].UserID)
	}
}

func TestMarkProposalSentNotFound(t *testing.T) {
	mgr, _ := newManager(t)

	_, err := mgr.MarkProposalSent("missing", "u-staff-1")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAddProjectFileRecordsActivity(t *testing.T) {
	mgr, s := newManager(t)

	file, err := mgr.AddProjectFile(lifecycle.AddProjectFileInput{
		ProjectID: "proj-1",
		FileName:  "plans.pdf",
		FileType:  "pdf",
		URL:       "/files/plans.pdf",
	}, "u-staff-1")
	if err != nil {
		t.Fatalf("AddProjectFile: %v", err)
	}
	if file.UploadedBy != "u-staff-1" || file.UploadedAt.IsZero() {
		t.Fatalf("upload metadata wrong: %+v", file)
	}

	feed, err := s.ProjectActivity("proj-1")
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if len(feed) == 0 || feed[0].Message != "File uploaded: plans.pdf" {
		t.Fatalf("feed = %+v, want file upload entry first", feed)
	}
}
