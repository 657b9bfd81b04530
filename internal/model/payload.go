package model

// SurveyPayload is the backend-facing save shape. Fields not applicable to a
// question's kind are sent as explicit nulls so the schema stays stable.
type SurveyPayload struct {
	Titulo       string            `json:"titulo" validate:"required"`
	Descripcion  string            `json:"descripcion"`
	EsPublica    bool              `json:"es_publica"`
	FechaInicio  *string           `json:"fecha_inicio"`
	FechaTermino *string           `json:"fecha_termino"`
	Preguntas    []QuestionPayload `json:"preguntas"`
}

// SurveyMetadataPayload is the reduced save shape for surveys whose question
// structure is locked by existing responses.
type SurveyMetadataPayload struct {
	Titulo       string  `json:"titulo" validate:"required"`
	Descripcion  string  `json:"descripcion"`
	EsPublica    bool    `json:"es_publica"`
	FechaInicio  *string `json:"fecha_inicio"`
	FechaTermino *string `json:"fecha_termino"`
}

// QuestionPayload carries one question. ID is present only for questions the
// backend already knows; draft tokens are omitted so the backend inserts new
// rows.
type QuestionPayload struct {
	ID                 *int64          `json:"id,omitempty"`
	Pregunta           *string         `json:"pregunta"`
	Tipo               QuestionKind    `json:"tipo" validate:"required"`
	EsRequerido        bool            `json:"es_requerido"`
	EscalaMax          *int            `json:"escala_max" validate:"omitempty,min=2,max=10"`
	EscalaLabelInicio  *string         `json:"escala_label_inicio"`
	EscalaLabelFin     *string         `json:"escala_label_fin"`
	TituloSeccion      *string         `json:"titulo_seccion"`
	DescripcionSeccion *string         `json:"descripcion_seccion"`
	Orden              int             `json:"orden"`
	Opciones           []OptionPayload `json:"opciones"`
}

// OptionPayload carries one option, with the same conditional-id rule as
// QuestionPayload.
type OptionPayload struct {
	ID          *int64 `json:"id,omitempty"`
	OpcionTexto string `json:"opcion_texto"`
}

// InviteeSyncPayload is the replace-all invitee set for a private survey.
// Empty values clear all prior invitations server-side.
type InviteeSyncPayload struct {
	Invitados []int64 `json:"invitados"`
	Emails    string  `json:"emails"`
}
