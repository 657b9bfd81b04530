package editor

import (
	"github.com/go-playground/validator/v10"

	"encuestas/internal/model"
)

var validate = validator.New()

// Validate runs the local pre-submit checks on the draft's save payload.
// This only catches what the struct tags express (missing title, scale
// bounds); the backend remains the authority and its 422 responses are the
// canonical validation source.
func Validate(d *model.SurveyDraft) error {
	if d.StructureLocked() {
		return validate.Struct(MetadataPayload(d))
	}
	return validate.Struct(Payload(d))
}
