package editor

import (
	"fmt"

	"encuestas/internal/model"
)

func newOption(n int) model.Option {
	return model.Option{
		ID:   model.NewDraftID(),
		Text: fmt.Sprintf("Opción %d", n),
	}
}

// AddOption appends a placeholder option ("Opción {n}") to a copy of q.
// Callers are expected to have checked that the kind uses options.
func AddOption(q model.Question) model.Question {
	opts := make([]model.Option, len(q.Options), len(q.Options)+1)
	copy(opts, q.Options)
	q.Options = append(opts, newOption(len(opts)+1))
	return q
}

// UpdateOptionText replaces the text of the option with the given id.
// A missing id is a silent no-op: the delete-then-edit race from the UI is
// expected and benign.
func UpdateOptionText(q model.Question, id model.Identifier, text string) model.Question {
	i := q.OptionIndex(id)
	if i < 0 {
		return q
	}
	opts := make([]model.Option, len(q.Options))
	copy(opts, q.Options)
	opts[i].Text = text
	q.Options = opts
	return q
}

// RemoveOption drops the option with the given id. Remaining options keep
// their positions; no minimum count is enforced here, the backend is the
// authority on choice-question cardinality.
func RemoveOption(q model.Question, id model.Identifier) model.Question {
	i := q.OptionIndex(id)
	if i < 0 {
		return q
	}
	opts := make([]model.Option, 0, len(q.Options)-1)
	opts = append(opts, q.Options[:i]...)
	opts = append(opts, q.Options[i+1:]...)
	q.Options = opts
	return q
}

// ReorderOptions moves one option within a copy of q.
func ReorderOptions(q model.Question, from, to int) model.Question {
	q.Options = Move(q.Options, from, to)
	return q
}

// MoveOption is the drag-and-drop form of ReorderOptions.
func MoveOption(q model.Question, dragged, target model.Identifier) (model.Question, bool) {
	opts, moved := MoveByID(q.Options, func(o model.Option) model.Identifier { return o.ID }, dragged, target)
	if moved {
		q.Options = opts
	}
	return q, moved
}
