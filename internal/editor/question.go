package editor

import (
	"fmt"

	"github.com/spf13/cast"

	"encuestas/internal/model"
)

// Field names a settable question field in the generic UpdateField setter.
// Values mirror the wire names so validation errors map back directly.
type Field string

const (
	FieldText               Field = "pregunta"
	FieldKind               Field = "tipo"
	FieldRequired           Field = "es_requerido"
	FieldScaleMax           Field = "escala_max"
	FieldScaleLabelStart    Field = "escala_label_inicio"
	FieldScaleLabelEnd      Field = "escala_label_fin"
	FieldSectionTitle       Field = "titulo_seccion"
	FieldSectionDescription Field = "descripcion_seccion"
)

// NewQuestion builds a question of the given kind ready to append to a list
// of currentCount questions. Choice kinds are seeded with one placeholder
// option, scales default to a maximum of 5.
func NewQuestion(kind model.QuestionKind, currentCount int) model.Question {
	q := model.Question{
		ID:    model.NewDraftID(),
		Kind:  kind,
		Order: currentCount + 1,
	}
	if kind.HasOptions() {
		q.Options = []model.Option{newOption(1)}
	}
	if kind == model.KindScale {
		q.ScaleMax = 5
	}
	return q
}

// UpdateField sets a single field on a copy of q and returns it. Setting
// FieldKind is the one place kind-transition side effects happen: leaving a
// choice kind clears the options, entering one seeds a placeholder option,
// and entering the scale kind defaults the maximum.
func UpdateField(q model.Question, field Field, value any) (model.Question, error) {
	switch field {
	case FieldText:
		q.Text = cast.ToString(value)
	case FieldRequired:
		q.Required = cast.ToBool(value)
	case FieldScaleMax:
		q.ScaleMax = cast.ToInt(value)
	case FieldScaleLabelStart:
		q.ScaleLabelStart = cast.ToString(value)
	case FieldScaleLabelEnd:
		q.ScaleLabelEnd = cast.ToString(value)
	case FieldSectionTitle:
		q.SectionTitle = cast.ToString(value)
	case FieldSectionDescription:
		q.SectionDescription = cast.ToString(value)
	case FieldKind:
		kind := model.QuestionKind(cast.ToString(value))
		if !kind.Valid() {
			return q, fmt.Errorf("%w: %q", model.ErrUnknownKind, kind)
		}
		q = switchKind(q, kind)
	default:
		return q, fmt.Errorf("unknown question field %q", field)
	}
	return q, nil
}

func switchKind(q model.Question, kind model.QuestionKind) model.Question {
	prev := q.Kind
	q.Kind = kind
	if prev.HasOptions() && !kind.HasOptions() {
		q.Options = nil
	}
	if kind.HasOptions() && len(q.Options) == 0 {
		q.Options = []model.Option{newOption(1)}
	}
	if kind == model.KindScale && q.ScaleMax == 0 {
		q.ScaleMax = 5
	}
	return q
}
