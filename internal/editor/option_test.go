package editor_test

import (
	"testing"

	"encuestas/internal/editor"
	"encuestas/internal/model"
)

func TestAddOptionNumbersPlaceholder(t *testing.T) {
	q := editor.NewQuestion(model.KindMultipleChoice, 0)
	q = editor.AddOption(q)
	q = editor.AddOption(q)

	if len(q.Options) != 3 {
		t.Fatalf("options = %d, want 3", len(q.Options))
	}
	if q.Options[2].Text != "Opción 3" {
		t.Errorf("third option text = %q, want %q", q.Options[2].Text, "Opción 3")
	}
}

func TestAddThenDeleteOption(t *testing.T) {
	q := editor.NewQuestion(model.KindSingleChoice, 0)
	q = editor.UpdateOptionText(q, q.Options[0].ID, "A")
	q = editor.AddOption(q)
	q = editor.UpdateOptionText(q, q.Options[1].ID, "B")

	q = editor.RemoveOption(q, q.Options[0].ID)

	if len(q.Options) != 1 {
		t.Fatalf("options = %d, want 1", len(q.Options))
	}
	if q.Options[0].Text != "B" {
		t.Errorf("remaining option = %q, want %q", q.Options[0].Text, "B")
	}
}

func TestUpdateMissingOptionIsSilent(t *testing.T) {
	q := editor.NewQuestion(model.KindSingleChoice, 0)
	before := q.Options[0].Text

	// Delete-then-edit races from the UI are expected; nothing must change.
	q = editor.UpdateOptionText(q, model.NewDraftID(), "ghost")

	if q.Options[0].Text != before {
		t.Error("updating a missing option changed an existing one")
	}
}

func TestRemoveMissingOptionIsSilent(t *testing.T) {
	q := editor.NewQuestion(model.KindSingleChoice, 0)

	q = editor.RemoveOption(q, model.NewDraftID())

	if len(q.Options) != 1 {
		t.Errorf("options = %d, want 1", len(q.Options))
	}
}

func TestRemoveLastOptionIsAllowed(t *testing.T) {
	q := editor.NewQuestion(model.KindSingleChoice, 0)

	// Minimum cardinality is the backend's call, not this layer's.
	q = editor.RemoveOption(q, q.Options[0].ID)

	if len(q.Options) != 0 {
		t.Errorf("options = %d, want 0", len(q.Options))
	}
}

func TestReorderOptions(t *testing.T) {
	q := editor.NewQuestion(model.KindDropdown, 0)
	q = editor.UpdateOptionText(q, q.Options[0].ID, "uno")
	q = editor.AddOption(q)
	q = editor.UpdateOptionText(q, q.Options[1].ID, "dos")
	q = editor.AddOption(q)
	q = editor.UpdateOptionText(q, q.Options[2].ID, "tres")

	q = editor.ReorderOptions(q, 2, 0)

	want := []string{"tres", "uno", "dos"}
	for i, w := range want {
		if q.Options[i].Text != w {
			t.Fatalf("options after reorder = %v, want %v", optionTexts(q), want)
		}
	}
}

func TestMoveOptionByDrag(t *testing.T) {
	q := editor.NewQuestion(model.KindSingleChoice, 0)
	q = editor.AddOption(q)
	q = editor.AddOption(q)

	dragged := q.Options[2].ID
	target := q.Options[0].ID

	q, moved := editor.MoveOption(q, dragged, target)
	if !moved {
		t.Fatal("expected a move")
	}
	if !q.Options[0].ID.Equal(dragged) {
		t.Error("dragged option is not first")
	}

	if _, moved := editor.MoveOption(q, dragged, dragged); moved {
		t.Error("dropping an option onto itself must be a no-op")
	}
}

func optionTexts(q model.Question) []string {
	out := make([]string, len(q.Options))
	for i, o := range q.Options {
		out[i] = o.Text
	}
	return out
}
