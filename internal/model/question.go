package model

// QuestionKind is the closed set of question types the editor supports.
// Values match the backend's wire vocabulary.
type QuestionKind string

const (
	KindShortText      QuestionKind = "texto_corto"
	KindLongText       QuestionKind = "texto_largo"
	KindSingleChoice   QuestionKind = "opcion_unica"
	KindMultipleChoice QuestionKind = "opcion_multiple"
	KindDropdown       QuestionKind = "desplegable"
	KindDate           QuestionKind = "fecha"
	KindTime           QuestionKind = "hora"
	KindFile           QuestionKind = "archivo"
	KindScale          QuestionKind = "escala"
	KindSection        QuestionKind = "seccion"
)

// Valid reports whether k is one of the known kinds.
func (k QuestionKind) Valid() bool {
	switch k {
	case KindShortText, KindLongText, KindSingleChoice, KindMultipleChoice,
		KindDropdown, KindDate, KindTime, KindFile, KindScale, KindSection:
		return true
	}
	return false
}

// HasOptions reports whether the kind carries an option list.
func (k QuestionKind) HasOptions() bool {
	switch k {
	case KindSingleChoice, KindMultipleChoice, KindDropdown:
		return true
	}
	return false
}

// Answerable reports whether the kind accepts a response. Sections are
// purely visual grouping entries.
func (k QuestionKind) Answerable() bool {
	return k != KindSection
}

// Option is a selectable answer owned by a choice question. Its order is
// implicit in the slice position.
type Option struct {
	ID   Identifier
	Text string
}

// Question is one entry in the draft's ordered question list. Kind-specific
// fields are zero unless the kind uses them; the payload builder maps zero
// values to explicit nulls on the wire.
type Question struct {
	ID       Identifier
	Kind     QuestionKind
	Text     string // empty for sections
	Required bool
	Order    int

	// Choice kinds only.
	Options []Option

	// Scale only.
	ScaleMax        int
	ScaleLabelStart string
	ScaleLabelEnd   string

	// Section only.
	SectionTitle       string
	SectionDescription string
}

// OptionIndex returns the position of the option with the given id, or -1.
func (q Question) OptionIndex(id Identifier) int {
	for i, opt := range q.Options {
		if opt.ID.Equal(id) {
			return i
		}
	}
	return -1
}
