package model

import "fmt"

// Invitee is a registered user granted access to a private survey.
type Invitee struct {
	UserID int64
	Label  string // display label, "Name (email)"
}

// SurveyDraft is the in-memory, not-yet-persisted state of a survey being
// edited. It is mutated exclusively through the editor package and
// serialized to a SurveyPayload at save time.
type SurveyDraft struct {
	ID          int64  // server id, 0 until first save
	Slug        string // empty for a new survey
	Title       string
	Description string
	IsPublic    bool
	StartDate   string // YYYY-MM-DD, empty when unset
	EndDate     string

	// Only meaningful when IsPublic is false.
	Invitees      []Invitee
	PendingEmails string // raw newline/comma-separated text, parsed by the backend

	Questions []Question

	// How many responses the persisted survey already has. Structural edits
	// are refused once responses exist.
	ResponseCount int

	// View state: the question currently open in the full editor. At most
	// one question is active. Never serialized.
	ActiveQuestion Identifier
}

// IsNew reports whether the draft has never been saved.
func (d *SurveyDraft) IsNew() bool {
	return d.Slug == ""
}

// StructureLocked reports whether the question list may still be edited.
// A survey with recorded responses only accepts metadata changes.
func (d *SurveyDraft) StructureLocked() bool {
	return !d.IsNew() && d.ResponseCount > 0
}

// QuestionIndex returns the position of the question with the given id, or -1.
func (d *SurveyDraft) QuestionIndex(id Identifier) int {
	for i, q := range d.Questions {
		if q.ID.Equal(id) {
			return i
		}
	}
	return -1
}

// Question returns a pointer to the question with the given id, or nil.
func (d *SurveyDraft) Question(id Identifier) *Question {
	if i := d.QuestionIndex(id); i >= 0 {
		return &d.Questions[i]
	}
	return nil
}

// SurveyRecord is a persisted survey as returned by the backend, with nested
// questions, options, invited users and pending invitations.
type SurveyRecord struct {
	ID              int64              `json:"id"`
	Slug            string             `json:"slug"`
	Titulo          string             `json:"titulo"`
	Descripcion     string             `json:"descripcion"`
	EsPublica       bool               `json:"es_publica"`
	FechaInicio     string             `json:"fecha_inicio"`
	FechaTermino    string             `json:"fecha_termino"`
	Preguntas       []QuestionRecord   `json:"preguntas"`
	Invitados       []UserRecord       `json:"usuarios_invitados"`
	Invitaciones    []InvitationRecord `json:"invitaciones"`
	RespuestasCount int                `json:"respuestas_count"`
}

// QuestionRecord is a persisted question row. Kind-specific columns come
// back as nulls when not applicable.
type QuestionRecord struct {
	ID                 int64          `json:"id"`
	Pregunta           *string        `json:"pregunta"`
	Tipo               QuestionKind   `json:"tipo"`
	EsRequerido        bool           `json:"es_requerido"`
	Orden              int            `json:"orden"`
	EscalaMax          *int           `json:"escala_max"`
	EscalaLabelInicio  *string        `json:"escala_label_inicio"`
	EscalaLabelFin     *string        `json:"escala_label_fin"`
	TituloSeccion      *string        `json:"titulo_seccion"`
	DescripcionSeccion *string        `json:"descripcion_seccion"`
	Opciones           []OptionRecord `json:"opciones"`
}

// OptionRecord is a persisted option row.
type OptionRecord struct {
	ID          int64  `json:"id"`
	OpcionTexto string `json:"opcion_texto"`
	Orden       int    `json:"orden"`
}

// UserRecord is a backend user, as returned by the invitee search and the
// editor fetch.
type UserRecord struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Label is the display form used for the invitee picker.
func (u UserRecord) Label() string {
	return fmt.Sprintf("%s (%s)", u.Name, u.Email)
}

// InvitationRecord is a pending email invitation not yet tied to a user.
type InvitationRecord struct {
	Email string `json:"email"`
}
