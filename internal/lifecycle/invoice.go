package lifecycle

import (
	"fmt"
	"time"

	"firmlynk/internal/models"
	"firmlynk/internal/store"

	"github.com/google/uuid"
)

type UpsertInvoiceInput struct {
	ID          string
	ProjectID   string
	ClientID    string
	ProposalID  string
	LineItems   models.LineItems
	Taxes       float64
	Description string
	Notes       string
	Status      models.InvoiceStatus
}

func (m *Manager) UpsertInvoice(in UpsertInvoiceInput, userID string) (*models.Invoice, error) {
	if len(in.LineItems) == 0 {
		return nil, fmt.Errorf("%w: at least one line item is required", models.ErrValidation)
	}
	for _, it := range in.LineItems {
		if it.Quantity < 0 || it.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: quantity and unit price must not be negative", models.ErrValidation)
		}
	}
	if in.Taxes < 0 {
		return nil, fmt.Errorf("%w: taxes must not be negative", models.ErrValidation)
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown invoice status %q", models.ErrValidation, in.Status)
	}

	items := withLineItemIDs(in.LineItems)
	total := items.Total() + in.Taxes
	now := time.Now().UTC()

	var invoice *models.Invoice
	err := m.store.Transaction(func(tx *store.Store) error {
		var existing *models.Invoice
		if in.ID != "" {
			var err error
			existing, err = tx.InvoiceByID(in.ID)
			if err != nil {
				return err
			}
		}

		if existing != nil {
			existing.ClientID = in.ClientID
			existing.ProposalID = in.ProposalID
			existing.LineItems = items
			existing.Total = total
			existing.Taxes = in.Taxes
			existing.Description = in.Description
			existing.Notes = in.Notes
			if in.Status != "" {
				existing.Status = in.Status
			}
			existing.UpdatedAt = now
			if err := tx.Save(existing); err != nil {
				return err
			}
			invoice = existing
			return recordTransition(tx, m.log, models.EntryInvoice, existing.ID, existing.ProjectID, "Invoice updated", userID)
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
			status = models.InvoiceDraft
		}
		invoice = &models.Invoice{
			ID:          uuid.NewString(),
			ProjectID:   project.ID,
			FirmID:      project.FirmID,
			ClientID:    in.ClientID,
			ProposalID:  in.ProposalID,
			LineItems:   items,
			Total:       total,
			Taxes:       in.Taxes,
			Description: in.Description,
			Notes:       in.Notes,
			Status:      status,
			UpdatedAt:   now,
		}
		if err := tx.Create(invoice); err != nil {
			return err
		}
		return recordTransition(tx, m.log, models.EntryInvoice, invoice.ID, invoice.ProjectID, "Invoice created", userID)
	})
	if err != nil {
		return nil, err
	}
	return m.attachInvoiceAudit(invoice)
}

// UpdateInvoiceStatus trusts the caller's requested status: every jump in the
// transition table is legal, including draft straight to paid. Only the
// timestamp matching the entered status gets stamped.
func (m *Manager) UpdateInvoiceStatus(id string, status models.InvoiceStatus, userID string) (*models.Invoice, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown invoice status %q", models.ErrValidation, status)
	}

	var invoice *models.Invoice
	err := m.store.Transaction(func(tx *store.Store) error {
		var err error
		invoice, err = tx.InvoiceByID(id)
		if err != nil {
			return err
		}
		if invoice == nil {
			return models.ErrNotFound
		}
		if !invoiceTransitionAllowed(invoice.Status, status) {
			return fmt.Errorf("%w: invoice cannot move from %q to %q", models.ErrInvalidTransition, invoice.Status, status)
		}

		now := time.Now().UTC()
		invoice.Status = status
		switch status {
		case models.InvoiceSent:
			invoice.SentAt = &now
		case models.InvoicePaid:
			invoice.PaidAt = &now
		}
		if err := tx.Save(invoice); err != nil {
			return err
		}
		return recordTransition(tx, m.log, models.EntryInvoice, invoice.ID, invoice.ProjectID, "Invoice marked "+string(status), userID)
	})
	if err != nil {
		return nil, err
	}

	m.log.Info("invoice status updated", "invoiceId", invoice.ID, "status", status, "actor", userID)
	return m.attachInvoiceAudit(invoice)
}

func (m *Manager) attachInvoiceAudit(inv *models.Invoice) (*models.Invoice, error) {
	entries, err := m.store.EntityAudit(string(models.EntryInvoice), inv.ID)
	if err != nil {
		return nil, err
	}
	inv.AuditLog = entries
	return inv, nil
}
