package query_test

import (
	"errors"
	"testing"

	"firmlynk/internal/lifecycle"
	"firmlynk/internal/logger"
	"firmlynk/internal/models"
	"firmlynk/internal/query"
	"firmlynk/internal/store/storetest"
)

func TestListProjectsForUserScenario(t *testing.T) {
	s := storetest.Seeded(t)
	f := query.New(s, logger.NewNop())

	client1, err := s.UserByID("u-client-1")
	if err != nil || client1 == nil {
		t.Fatalf("seed user: %v", err)
	}
	projects, err := f.ListProjectsForUser(client1)
	if err != nil {
		t.Fatalf("ListProjectsForUser: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != "proj-1" {
		t.Fatalf("client-1 sees %v, want [proj-1]", projects)
	}

	client2, err := s.UserByID("u-client-2")
	if err != nil || client2 == nil {
		t.Fatalf("seed user: %v", err)
	}
	projects, err = f.ListProjectsForUser(client2)
	if err != nil {
		t.Fatalf("ListProjectsForUser: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("client-2 (other firm) sees %v, want []", projects)
	}
}

func TestInternalNotesHiddenFromClients(t *testing.T) {
	s := storetest.Seeded(t)
	f := query.New(s, logger.NewNop())

	client, _ := s.UserByID("u-client-1")
	project, err := f.GetProjectForUser("proj-1", client)
	if err != nil {
		t.Fatalf("GetProjectForUser: %v", err)
	}
	if project.InternalNotes != "" {
		t.Fatalf("client can read internal notes: %q", project.InternalNotes)
	}

	staff, _ := s.UserByID("u-staff-1")
	project, err = f.GetProjectForUser("proj-1", staff)
	if err != nil {
		t.Fatalf("GetProjectForUser: %v", err)
	}
	if project.InternalNotes == "" {
		t.Fatal("staff lost internal notes")
	}
}

func TestGetProjectAcrossFirmsIsNotFound(t *testing.T) {
	s := storetest.Seeded(t)
	f := query.New(s, logger.NewNop())

	outsider, _ := s.UserByID("u-admin-2")
	_, err := f.GetProjectForUser("proj-1", outsider)
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound (no id leak across firms)", err)
	}
}

func TestFieldReportRoundTrip(t *testing.T) {
	s := storetest.Seeded(t)
	mgr := lifecycle.New(s, logger.NewNop())
	f := query.New(s, logger.NewNop())

	created, err := mgr.UpsertFieldReport(lifecycle.UpsertFieldReportInput{
		ProjectID:        "proj-1",
		ClientID:         "u-client-1",
		Title:            "Roof Inspection",
		UserEnteredNotes: "Membrane in good shape.",
		Photos:           []models.FieldReviewPhoto{{URL: "/p.png", Caption: "roof"}},
		Disclaimers:      []string{"Limited to visible areas."},
		AuthorID:         "u-staff-1",
	}, "u-staff-1")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	staff, _ := s.UserByID("u-staff-1")
	fetched, err := f.GetFieldReportByID(created.ID, staff)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if fetched.ID != created.ID ||
		fetched.Title != created.Title ||
		fetched.UserEnteredNotes != created.UserEnteredNotes ||
		fetched.Status != created.Status ||
		fetched.FirmID != created.FirmID ||
		fetched.ProjectID != created.ProjectID {
		t.Fatalf("round trip mismatch:\ncreated %+v\nfetched %+v", created, fetched)
	}
	if len(fetched.Photos) != 1 || fetched.Photos[0].ID != created.Photos[0].ID {
		t.Fatalf("photos mismatch: %+v vs %+v", fetched.Photos, created.Photos)
	}
	if len(fetched.Disclaimers) != 1 || fetched.Disclaimers[0] != created.Disclaimers[0] {
		t.Fatalf("disclaimers mismatch: %+v", fetched.Disclaimers)
	}
	if len(fetched.AuditLog) != len(created.AuditLog) || len(fetched.AuditLog) != 1 {
		t.Fatalf("audit mismatch: %d vs %d entries", len(fetched.AuditLog), len(created.AuditLog))
	}
	if fetched.AuditLog[0].ID != created.AuditLog[0].ID {
		t.Fatalf("audit entry ids differ: %s vs %s", fetched.AuditLog[0].ID, created.AuditLog[0].ID)
	}
}

func TestClientCannotFetchDraftReport(t *testing.T) {
	s := storetest.Seeded(t)
	mgr := lifecycle.New(s, logger.NewNop())
	f := query.New(s, logger.NewNop())

	draft, err := mgr.UpsertFieldReport(lifecycle.UpsertFieldReportInput{
		ProjectID: "proj-1",
		ClientID:  "u-client-1",
		Title:     "Draft Observation",
		AuthorID:  "u-staff-1",
	}, "u-staff-1")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	client, _ := s.UserByID("u-client-1")
	if _, err := f.GetFieldReportByID(draft.ID, client); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("client fetch of draft: err = %v, want ErrNotFound", err)
	}

	reports, err := f.ListFieldReportsByProject("proj-1", client)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, r := range reports {
		if r.ID == draft.ID {
			t.Fatal("draft leaked into client listing")
		}
	}

	// the seeded approved report stays visible
	if _, err := f.GetFieldReportByID("fr-1", client); err != nil {
		t.Fatalf("client fetch of approved report: %v", err)
	}
}

func TestListProposalsForUserFiltersByProjectMembership(t *testing.T) {
	s := storetest.Seeded(t)
	mgr := lifecycle.New(s, logger.NewNop())
	f := query.New(s, logger.NewNop())

	// proposal on proj-2, which has no clients
	if _, err := mgr.UpsertProposal(lifecycle.UpsertProposalInput{
		ProjectID: "proj-2",
		ClientID:  "u-client-1",
		Title:     "Lakeside SD",
		LineItems: models.LineItems{{Description: "a", Quantity: 1, UnitPrice: 1}},
	}, "u-staff-1"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	staff, _ := s.UserByID("u-staff-1")
	staffList, err := f.ListProposalsForUser(staff)
	if err != nil {
		t.Fatalf("staff list: %v", err)
	}
	if len(staffList) != 2 {
		t.Fatalf("staff sees %d proposals, want 2", len(staffList))
	}

	client, _ := s.UserByID("u-client-1")
	clientList, err := f.ListProposalsForUser(client)
	if err != nil {
		t.Fatalf("client list: %v", err)
	}
	if len(clientList) != 1 || clientList[0].ID != "prop-1" {
		t.Fatalf("client sees %v, want only prop-1", clientList)
	}
}

func TestProjectActivityRequiresVisibility(t *testing.T) {
	s := storetest.Seeded(t)
	f := query.New(s, logger.NewNop())

	outsider, _ := s.UserByID("u-client-2")
	if _, err := f.ProjectActivity("proj-1", outsider); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	staff, _ := s.UserByID("u-staff-1")
	entries, err := f.ProjectActivity("proj-1", staff)
	if err != nil {
		t.Fatalf("ProjectActivity: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("seeded project has no activity")
	}
}
