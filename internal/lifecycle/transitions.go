package lifecycle

import "firmlynk/internal/models"

// Transition legality tables, consulted before any status mutation.
//
// The asymmetry between invoices and field reports is deliberate and mirrors
// the reference behavior: invoices trust the caller's requested status (a
// draft invoice can be marked paid directly), while field reports strictly
// require approval before sending. Flagged for product clarification rather
// than "fixed" here.

var proposalTransitions = map[models.ProposalStatus]map[models.ProposalStatus]bool{
	models.ProposalDraft: {models.ProposalSent: true},
	models.ProposalSent:  {models.ProposalSent: true},
}

var invoiceTransitions = map[models.InvoiceStatus]map[models.InvoiceStatus]bool{
	models.InvoiceDraft: {models.InvoiceDraft: true, models.InvoiceSent: true, models.InvoicePaid: true},
	models.InvoiceSent:  {models.InvoiceDraft: true, models.InvoiceSent: true, models.InvoicePaid: true},
	models.InvoicePaid:  {models.InvoiceDraft: true, models.InvoiceSent: true, models.InvoicePaid: true},
}

var fieldReportTransitions = map[models.FieldReportStatus]map[models.FieldReportStatus]bool{
	models.FieldReportDraft:    {models.FieldReportDraft: true, models.FieldReportApproved: true},
	models.FieldReportApproved: {models.FieldReportDraft: true, models.FieldReportApproved: true, models.FieldReportSent: true},
	models.FieldReportSent:     {models.FieldReportDraft: true, models.FieldReportApproved: true},
}

func proposalTransitionAllowed(from, to models.ProposalStatus) bool {
	return proposalTransitions[from][to]
}

func invoiceTransitionAllowed(from, to models.InvoiceStatus) bool {
	return invoiceTransitions[from][to]
}

func fieldReportTransitionAllowed(from, to models.FieldReportStatus) bool {
	return fieldReportTransitions[from][to]
}
