package store

import (
	"time"

	"firmlynk/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seed loads the demo dataset: two firms, six users, two projects and one
// proposal/invoice/report/file on the Civic Center project. Safe to call on a
// freshly Reset store only.
func (s *Store) Seed() error {
	now := time.Now().UTC()

	firms := []models.Firm{
		{
			ID:   "firm-1",
			Name: "ArcStone Design",
			Settings: models.FirmSettings{
				LogoURL:      "/logo-arcstone.svg",
				ContactEmail: "hello@arcstone.test",
				ContactPhone: "(415) 555-0101",
				Address:      "500 Market St, San Francisco, CA",
			},
		},
		{
			ID:   "firm-2",
			Name: "Vertex Engineering",
			Settings: models.FirmSettings{
				LogoURL:      "/logo-vertex.svg",
				ContactEmail: "contact@vertex.test",
				ContactPhone: "(206) 555-2300",
				Address:      "1200 Pine Ave, Seattle, WA",
			},
		},
	}

	type seedUser struct {
		id, name, email string
		role            models.Role
		firmID          string
	}
	users := []seedUser{
		{"u-admin-1", "Alex Rivera", "alex@arcstone.test", models.RoleAdmin, "firm-1"},
		{"u-staff-1", "Jamie Chen", "jamie@arcstone.test", models.RoleStaff, "firm-1"},
		{"u-client-1", "Casey Morgan", "casey@clientco.test", models.RoleClient, "firm-1"},
		{"u-admin-2", "Priya Nair", "priya@vertex.test", models.RoleAdmin, "firm-2"},
		{"u-staff-2", "Lee Thompson", "lee@vertex.test", models.RoleStaff, "firm-2"},
		{"u-client-2", "Taylor Brooks", "taylor@citybuild.test", models.RoleClient, "firm-2"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Demo123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, f := range firms {
		if err := s.Create(&f); err != nil {
			return err
		}
	}

	for _, u := range users {
		user := models.User{
			ID:           u.id,
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			FirmID:       u.firmID,
		}
		if err := s.Create(&user); err != nil {
			return err
		}
	}

	projects := []models.Project{
		{
			ID:            "proj-1",
			FirmID:        "firm-1",
			Name:          "Civic Center Renovation",
			Description:   "Renovation and seismic retrofit of the downtown civic center.",
			Status:        models.ProjectActive,
			ClientIDs:     models.StringList{"u-client-1"},
			InternalNotes: "Coordinate weekly with city permitting office.",
		},
		{
			ID:            "proj-2",
			FirmID:        "firm-1",
			Name:          "Lakeside Mixed-Use",
			Description:   "Mixed-use development with retail podium and residential tower.",
			Status:        models.ProjectPlanning,
			ClientIDs:     models.StringList{},
			InternalNotes: "Evaluate curtain wall vendors.",
		},
	}
	for _, p := range projects {
		if err := s.Create(&p); err != nil {
			return err
		}
		entry := models.ActivityLogEntry{
			ID:        uuid.NewString(),
			CreatedAt: now,
			Type:      models.EntryProject,
			Message:   "Project created",
			UserID:    "u-admin-1",
			ProjectID: p.ID,
			Related:   &models.RelatedEntity{ID: p.ID, EntityType: "project"},
		}
		if err := s.Create(&entry); err != nil {
			return err
		}
	}

	file := models.ProjectFile{
		ID:         "file-1",
		ProjectID:  "proj-1",
		FileName:   "Site-Photos.zip",
		FileType:   "zip",
		URL:        "/files/site-photos.zip",
		UploadedBy: "u-staff-1",
		UploadedAt: now,
	}
	if err := s.Create(&file); err != nil {
		return err
	}

	sentAt := now
	proposal := models.Proposal{
		ID:          "prop-1",
		ProjectID:   "proj-1",
		FirmID:      "firm-1",
		ClientID:    "u-client-1",
		Title:       "Schematic Design Services",
		Description: "Scope includes programming, schematic design, and coordination meetings.",
		LineItems: models.LineItems{
			{ID: "li-1", Description: "Programming workshops", Quantity: 4, UnitPrice: 2500},
			{ID: "li-2", Description: "Schematic design package", Quantity: 1, UnitPrice: 18000},
		},
		Total:  28000,
		Status: models.ProposalSent,
		SentAt: &sentAt,
	}
	if err := s.Create(&proposal); err != nil {
		return err
	}
	if err := s.seedAudit(models.EntryProposal, proposal.ID, "Proposal sent to client", "u-admin-1", now); err != nil {
		return err
	}

	invoice := models.Invoice{
		ID:         "inv-1",
		ProjectID:  "proj-1",
		FirmID:     "firm-1",
		ClientID:   "u-client-1",
		ProposalID: "prop-1",
		LineItems: models.LineItems{
			{ID: "li-3", Description: "Design milestone 1", Quantity: 1, UnitPrice: 12000},
			{ID: "li-4", Description: "Consultant coordination", Quantity: 10, UnitPrice: 350},
		},
		Total:       15500,
		Taxes:       0,
		Description: "Design milestone invoice",
		Notes:       "Payable net 30.",
		Status:      models.InvoiceSent,
		SentAt:      &sentAt,
	}
	if err := s.Create(&invoice); err != nil {
		return err
	}
	if err := s.seedAudit(models.EntryInvoice, invoice.ID, "Invoice sent to client", "u-admin-1", now); err != nil {
		return err
	}

	approvedAt := now
	report := models.FieldReviewReport{
		ID:               "fr-1",
		ProjectID:        "proj-1",
		FirmID:           "firm-1",
		ClientID:         "u-client-1",
		Title:            "Field Observation #1",
		UserEnteredNotes: "Observed rebar placement at podium level. Minor adjustments needed at grid C5.",
		AIDraftNarrative: "During the site visit, rebar placement at the podium level was reviewed. Minor adjustments were recommended at grid C5 to maintain cover. Contractor acknowledged and will adjust prior to concrete pour.",
		Photos: []models.FieldReviewPhoto{
			{ID: "ph-1", URL: "/placeholder.png", Caption: "Rebar at grid C5"},
			{ID: "ph-2", URL: "/placeholder.png", Caption: "Podium formwork"},
		},
		Disclaimers: models.StringList{
			"This field review is limited to areas observed during the visit.",
			"Contractor remains responsible for means and methods.",
		},
		Status:     models.FieldReportApproved,
		AuthorID:   "u-staff-1",
		ApproverID: "u-admin-1",
		ApprovedAt: &approvedAt,
	}
	if err := s.Create(&report); err != nil {
		return err
	}
	if err := s.seedAudit(models.EntryFieldReport, report.ID, "Report approved", "u-admin-1", now); err != nil {
		return err
	}

	s.log.Info("seeded demo data", "firms", len(firms), "users", len(users), "projects", len(projects))
	return nil
}

func (s *Store) seedAudit(entryType models.EntryType, entityID, message, userID string, at time.Time) error {
	entry := models.ActivityLogEntry{
		ID:         uuid.NewString(),
		CreatedAt:  at,
		Type:       entryType,
		Message:    message,
		UserID:     userID,
		EntityType: string(entryType),
		EntityID:   entityID,
		Related:    &models.RelatedEntity{ID: entityID, EntityType: string(entryType)},
	}
	return s.Create(&entry)
}
