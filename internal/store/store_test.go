package store_test

import (
	"testing"

	"firmlynk/internal/models"
	"firmlynk/internal/store/storetest"
)

func TestLookupsReturnAbsentNotError(t *testing.T) {
	s := storetest.New(t)

	project, err := s.ProjectByID("missing")
	if err != nil {
		t.Fatalf("ProjectByID on missing id errored: %v", err)
	}
	if project != nil {
		t.Fatalf("ProjectByID on missing id returned %+v", project)
	}

	invoice, err := s.InvoiceByID("missing")
	if err != nil || invoice != nil {
		t.Fatalf("InvoiceByID on missing id: got %+v, %v", invoice, err)
	}

	user, err := s.UserByEmail("nobody@example.test")
	if err != nil || user != nil {
		t.Fatalf("UserByEmail on missing email: got %+v, %v", user, err)
	}
}

func TestSeedLoadsDemoDataset(t *testing.T) {
	s := storetest.Seeded(t)

	firms, err := s.Firms()
	if err != nil || len(firms) != 2 {
		t.Fatalf("Firms: got %d, %v; want 2 firms", len(firms), err)
	}

	admin, err := s.UserByID("u-admin-1")
	if err != nil || admin == nil {
		t.Fatalf("seed admin missing: %v", err)
	}
	if admin.Role != models.RoleAdmin || admin.FirmID != "firm-1" {
		t.Fatalf("seed admin wrong: %+v", admin)
	}

	proposal, err := s.ProposalByID("prop-1")
	if err != nil || proposal == nil {
		t.Fatalf("seed proposal missing: %v", err)
	}
	if proposal.Total != 28000 {
		t.Fatalf("seed proposal total = %v, want 28000", proposal.Total)
	}

	report, err := s.FieldReportByID("fr-1")
	if err != nil || report == nil {
		t.Fatalf("seed report missing: %v", err)
	}
	if report.Status != models.FieldReportApproved || report.ApproverID != "u-admin-1" {
		t.Fatalf("seed report wrong: status=%s approver=%s", report.Status, report.ApproverID)
	}
	if len(report.Photos) != 2 || len(report.Disclaimers) != 2 {
		t.Fatalf("seed report lost serialized fields: %d photos, %d disclaimers", len(report.Photos), len(report.Disclaimers))
	}
}

func TestActivityOrderingNewestFirst(t *testing.T) {
	s := storetest.New(t)
	storetest.SeedFirm(t, s, "firm-1", "Firm One")
	storetest.SeedProject(t, s, "proj-1", "firm-1")

	messages := []string{"first", "second", "third"}
	for _, msg := range messages {
		entry := models.ActivityLogEntry{
			ID:        "e-" + msg,
			Type:      models.EntryProject,
			Message:   msg,
			UserID:    "u",
			ProjectID: "proj-1",
		}
		if err := s.Create(&entry); err != nil {
			t.Fatalf("create entry: %v", err)
		}
	}

	entries, err := s.ProjectActivity("proj-1")
	if err != nil {
		t.Fatalf("ProjectActivity: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i, want := range []string{"third", "second", "first"} {
		if entries[i].Message != want {
			t.Fatalf("entries[%d]=%q, want %q (newest first)", i, entries[i].Message, want)
		}
	}
}

func TestEntityAuditScopedToEntity(t *testing.T) {
	s := storetest.New(t)

	for _, id := range []string{"inv-1", "inv-2"} {
		entry := models.ActivityLogEntry{
			ID:         "audit-" + id,
			Type:       models.EntryInvoice,
			Message:    "Invoice created",
			UserID:     "u",
			EntityType: "invoice",
			EntityID:   id,
		}
		if err := s.Create(&entry); err != nil {
			t.Fatalf("create entry: %v", err)
		}
	}

	entries, err := s.EntityAudit("invoice", "inv-1")
	if err != nil {
		t.Fatalf("EntityAudit: %v", err)
	}
	if len(entries) != 1 || entries[0].EntityID != "inv-1" {
		t.Fatalf("audit trail leaked across entities: %+v", entries)
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := storetest.Seeded(t)

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	firms, err := s.Firms()
	if err != nil {
		t.Fatalf("Firms after reset: %v", err)
	}
	if len(firms) != 0 {
		t.Fatalf("reset left %d firms behind", len(firms))
	}
}
