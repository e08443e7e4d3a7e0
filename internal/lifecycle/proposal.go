package lifecycle

import (
	"fmt"
	"time"

	"firmlynk/internal/models"
	"firmlynk/internal/store"

	"github.com/google/uuid"
)

type UpsertProposalInput struct {
	ID          string
	ProjectID   string
	ClientID    string
	Title       string
	Description string
	LineItems   models.LineItems
	Status      models.ProposalStatus
}

// UpsertProposal creates the proposal when ID is empty or unknown, otherwise
// overwrites its content fields. Total is always recomputed; it is never
// caller-settable.
func (m *Manager) UpsertProposal(in UpsertProposalInput, userID string) (*models.Proposal, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	if len(in.LineItems) == 0 {
		return nil, fmt.Errorf("%w: at least one line item is required", models.ErrValidation)
	}
	for _, it := range in.LineItems {
		if it.Quantity < 0 || it.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: quantity and unit price must not be negative", models.ErrValidation)
		}
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown proposal status %q", models.ErrValidation, in.Status)
	}

	items := withLineItemIDs(in.LineItems)
	now := time.Now().UTC()

	var proposal *models.Proposal
	err := m.store.Transaction(func(tx *store.Store) error {
		var existing *models.Proposal
		if in.ID != "" {
			var err error
			existing, err = tx.ProposalByID(in.ID)
			if err != nil {
				return err
			}
		}

		if existing != nil {
			existing.ClientID = in.ClientID
			existing.Title = in.Title
			existing.Description = in.Description
			existing.LineItems = items
			existing.Total = items.Total()
			if in.Status != "" {
				existing.Status = in.Status
			}
			existing.UpdatedAt = now
			if err := tx.Save(existing); err != nil {
				return err
			}
			proposal = existing
			return recordTransition(tx, m.log, models.EntryProposal, existing.ID, existing.ProjectID, "Proposal updated", userID)
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
			status = models.ProposalDraft
		}
		proposal = &models.Proposal{
			ID:          uuid.NewString(),
			ProjectID:   project.ID,
			FirmID:      project.FirmID,
			ClientID:    in.ClientID,
			Title:       in.Title,
			Description: in.Description,
			LineItems:   items,
			Total:       items.Total(),
			Status:      status,
			UpdatedAt:   now,
		}
		if err := tx.Create(proposal); err != nil {
			return err
		}
		return recordTransition(tx, m.log, models.EntryProposal, proposal.ID, proposal.ProjectID, "Proposal created", userID)
	})
	if err != nil {
		return nil, err
	}
	return m.attachProposalAudit(proposal)
}

// MarkProposalSent is the proposal's only status operation, and it is one-way:
// there is no path back to draft.
func (m *Manager) MarkProposalSent(id, userID string) (*models.Proposal, error) {
	var proposal *models.Proposal
	err := m.store.Transaction(func(tx *store.Store) error {
		var err error
		proposal, err = tx.ProposalByID(id)
		if err != nil {
			return err
		}
		if proposal == nil {
			return models.ErrNotFound
		}
		if !proposalTransitionAllowed(proposal.Status, models.ProposalSent) {
			return fmt.Errorf("%w: proposal cannot move from %q to %q", models.ErrInvalidTransition, proposal.Status, models.ProposalSent)
		}

		now := time.Now().UTC()
		proposal.Status = models.ProposalSent
		proposal.SentAt = &now
		if err := tx.Save(proposal); err != nil {
			return err
		}
		return recordTransition(tx, m.log, models.EntryProposal, proposal.ID, proposal.ProjectID, "Proposal marked sent", userID)
	})
	if err != nil {
		return nil, err
	}

	m.log.Info("proposal sent", "proposalId", proposal.ID, "actor", userID)
	return m.attachProposalAudit(proposal)
}

func (m *Manager) attachProposalAudit(p *models.Proposal) (*models.Proposal, error) {
	entries, err := m.store.EntityAudit(string(models.EntryProposal), p.ID)
	if err != nil {
		return nil, err
	}
	p.AuditLog = entries
	return p, nil
}
