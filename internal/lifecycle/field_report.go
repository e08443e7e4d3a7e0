package lifecycle

import (
	"fmt"
	"time"

	"firmlynk/internal/models"
	"firmlynk/internal/store"

	"github.com/google/uuid"
)

type UpsertFieldReportInput struct {
	ID               string
	ProjectID        string
	ClientID         string
	Title            string
	UserEnteredNotes string
	AIDraftNarrative string
	Photos           []models.FieldReviewPhoto
	Disclaimers      []string
	Status           models.FieldReportStatus
	AuthorID         string
}

func (m *Manager) UpsertFieldReport(in UpsertFieldReportInput, userID string) (*models.FieldReviewReport, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown field report status %q", models.ErrValidation, in.Status)
	}

	photos := make([]models.FieldReviewPhoto, len(in.Photos))
	for i, ph := range in.Photos {
		if ph.ID == "" {
			ph.ID = uuid.NewString()
		}
		photos[i] = ph
	}
	now := time.Now().UTC()

	var report *models.FieldReviewReport
	err := m.store.Transaction(func(tx *store.Store) error {
		var existing *models.FieldReviewReport
		if in.ID != "" {
			var err error
			existing, err = tx.FieldReportByID(in.ID)
			if err != nil {
				return err
			}
		}

		if existing != nil {
			existing.Title = in.Title
			existing.UserEnteredNotes = in.UserEnteredNotes
			existing.AIDraftNarrative = in.AIDraftNarrative
			existing.Photos = photos
			existing.Disclaimers = append(models.StringList{}, in.Disclaimers...)
			if in.Status != "" {
				existing.Status = in.Status
			}
			existing.UpdatedAt = &now
			if err := tx.Save(existing); err != nil {
				return err
			}
			report = existing
			return recordTransition(tx, m.log, models.EntryFieldReport, existing.ID, existing.ProjectID, "Field review report updated", userID)
		}

		project, err := tx.ProjectByID(in.ProjectID)
		if err != nil {
			return err
		}
		if project == nil {
			return models.ErrNotFound
		}

		status := in.Status
		if status == "" {
			status = models.FieldReportDraft
		}
		report = &models.FieldReviewReport{
			ID:               uuid.NewString(),
			ProjectID:        project.ID,
			FirmID:           project.FirmID,
			ClientID:         in.ClientID,
			Title:            in.Title,
			UserEnteredNotes: in.UserEnteredNotes,
			AIDraftNarrative: in.AIDraftNarrative,
			Photos:           photos,
			Disclaimers:      append(models.StringList{}, in.Disclaimers...),
			Status:           status,
			AuthorID:         in.AuthorID,
		}
		if err := tx.Create(report); err != nil {
			return err
		}
		return recordTransition(tx, m.log, models.EntryFieldReport, report.ID, report.ProjectID, "Field review report created", userID)
	})
	if err != nil {
		return nil, err
	}
	return m.attachReportAudit(report)
}

// UpdateFieldReportStatus is the strict state machine: sending requires the
// report to be approved first. A rejected transition aborts with zero side
// effects, entering approved stamps the approver, entering sent stamps sentAt.
func (m *Manager) UpdateFieldReportStatus(id string, status models.FieldReportStatus, userID string) (*models.FieldReviewReport, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown field report status %q", models.ErrValidation, status)
	}

	var report *models.FieldReviewReport
	err := m.store.Transaction(func(tx *store.Store) error {
		var err error
		report, err = tx.FieldReportByID(id)
		if err != nil {
			return err
		}
		if report == nil {
			return models.ErrNotFound
		}
		if !fieldReportTransitionAllowed(report.Status, status) {
			return fmt.Errorf("%w: report must be approved before sending", models.ErrInvalidTransition)
		}

		now := time.Now().UTC()
		report.Status = status
		switch status {
		case models.FieldReportApproved:
			report.ApproverID = userID
			report.ApprovedAt = &now
		case models.FieldReportSent:
			report.SentAt = &now
		}
		if err := tx.Save(report); err != nil {
			return err
		}
		return recordTransition(tx, m.log, models.EntryFieldReport, report.ID, report.ProjectID, "Report marked "+string(status), userID)
	})
	if err != nil {
		return nil, err
	}

	m.log.Info("field report status updated", "reportId", report.ID, "status", status, "actor", userID)
	return m.attachReportAudit(report)
}

func (m *Manager) attachReportAudit(r *models.FieldReviewReport) (*models.FieldReviewReport, error) {
	entries, err := m.store.EntityAudit(string(models.EntryFieldReport), r.ID)
	if err != nil {
		return nil, err
	}
	r.AuditLog = entries
	return r, nil
}
