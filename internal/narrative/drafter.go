// Package narrative wraps the text-generation collaborator used to draft
// field review narratives. The core stores whatever comes back as opaque
// text; nothing downstream parses or validates it.
package narrative

import (
	"context"
	"fmt"
	"strings"
)

type DraftInput struct {
	Notes   string
	Context string
}

type Drafter interface {
	Draft(ctx context.Context, in DraftInput) (string, error)
}

// TemplateDrafter is the built-in stand-in for the real drafting service. It
// is deterministic so editors see stable output in development and tests.
type TemplateDrafter struct{}

func NewTemplateDrafter() *TemplateDrafter {
	return &TemplateDrafter{}
}

func (d *TemplateDrafter) Draft(_ context.Context, in DraftInput) (string, error) {
	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		return "", fmt.Errorf("narrative: notes are required")
	}

	var b strings.Builder
	if ctxText := strings.TrimSpace(in.Context); ctxText != "" {
		fmt.Fprintf(&b, "Site visit summary for %s. ", ctxText)
	}
	b.WriteString("During the site visit, the following conditions were observed: ")
	b.WriteString(strings.TrimRight(notes, "."))
	b.WriteString(". Observations were communicated to the contractor for follow-up prior to the next scheduled review.")
	return b.String(), nil
}
