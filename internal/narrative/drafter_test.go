package narrative

import (
	"context"
	"strings"
	"testing"
)

func TestTemplateDrafterDeterministic(t *testing.T) {
	d := NewTemplateDrafter()
	in := DraftInput{Notes: "Rebar placement reviewed at grid C5", Context: "Civic Center Renovation"}

	first, err := d.Draft(context.Background(), in)
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	second, err := d.Draft(context.Background(), in)
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if first != second {
		t.Fatalf("drafts differ:\n%q\n%q", first, second)
	}
	if !strings.Contains(first, "Rebar placement reviewed at grid C5") {
		t.Fatalf("draft lost the notes: %q", first)
	}
	if !strings.Contains(first, "Civic Center Renovation") {
		t.Fatalf("draft lost the context: %q", first)
	}
}

func TestTemplateDrafterRequiresNotes(t *testing.T) {
	d := NewTemplateDrafter()
	if _, err := d.Draft(context.Background(), DraftInput{Notes: "   "}); err == nil {
		t.Fatal("expected error for empty notes")
	}
}
