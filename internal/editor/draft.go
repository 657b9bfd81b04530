package editor

import (
	"strings"
	"time"

	"encuestas/internal/model"
)

// NewDraft creates an empty draft with the defaults a fresh editor session
// starts from: untitled, public, scheduled from today.
func NewDraft() *model.SurveyDraft {
	return &model.SurveyDraft{
		Title:     "Encuesta Sin Título",
		IsPublic:  true,
		StartDate: time.Now().Format("2006-01-02"),
	}
}

// Hydrate maps a fetched survey record into the editable draft shape.
// Invited users become picker entries, pending invitation emails are joined
// back into the raw textarea string.
func Hydrate(rec *model.SurveyRecord) *model.SurveyDraft {
	d := &model.SurveyDraft{
		ID:            rec.ID,
		Slug:          rec.Slug,
		Title:         rec.Titulo,
		Description:   rec.Descripcion,
		IsPublic:      rec.EsPublica,
		StartDate:     rec.FechaInicio,
		EndDate:       rec.FechaTermino,
		ResponseCount: rec.RespuestasCount,
	}

	d.Questions = make([]model.Question, 0, len(rec.Preguntas))
	for _, qr := range rec.Preguntas {
		d.Questions = append(d.Questions, hydrateQuestion(qr))
	}

	d.Invitees = make([]model.Invitee, 0, len(rec.Invitados))
	for _, u := range rec.Invitados {
		d.Invitees = append(d.Invitees, model.Invitee{UserID: u.ID, Label: u.Label()})
	}

	emails := make([]string, 0, len(rec.Invitaciones))
	for _, inv := range rec.Invitaciones {
		emails = append(emails, inv.Email)
	}
	d.PendingEmails = strings.Join(emails, "\n")

	return d
}

func hydrateQuestion(qr model.QuestionRecord) model.Question {
	q := model.Question{
		ID:       model.PersistedID(qr.ID),
		Kind:     qr.Tipo,
		Required: qr.EsRequerido,
		Order:    qr.Orden,
	}
	if qr.Pregunta != nil {
		q.Text = *qr.Pregunta
	}
	if qr.EscalaMax != nil {
		q.ScaleMax = *qr.EscalaMax
	}
	if qr.EscalaLabelInicio != nil {
		q.ScaleLabelStart = *qr.EscalaLabelInicio
	}
	if qr.EscalaLabelFin != nil {
		q.ScaleLabelEnd = *qr.EscalaLabelFin
	}
	if qr.TituloSeccion != nil {
		q.SectionTitle = *qr.TituloSeccion
	}
	if qr.DescripcionSeccion != nil {
		q.SectionDescription = *qr.DescripcionSeccion
	}
	if len(qr.Opciones) > 0 {
		q.Options = make([]model.Option, 0, len(qr.Opciones))
		for _, or := range qr.Opciones {
			q.Options = append(q.Options, model.Option{
				ID:   model.PersistedID(or.ID),
				Text: or.OpcionTexto,
			})
		}
	}
	return q
}

// AddQuestion appends a new question of the given kind and makes it the
// active one.
func AddQuestion(d *model.SurveyDraft, kind model.QuestionKind) (*model.Question, error) {
	if d.StructureLocked() {
		return nil, model.ErrStructureLocked
	}
	q := NewQuestion(kind, len(d.Questions))
	d.Questions = append(d.Questions, q)
	d.ActiveQuestion = q.ID
	return &d.Questions[len(d.Questions)-1], nil
}

// UpdateQuestion applies UpdateField to the question with the given id.
// Unknown ids are a silent no-op. Once responses exist the whole question
// editor is read-only, so every field edit is refused, not just kind
// changes.
func UpdateQuestion(d *model.SurveyDraft, id model.Identifier, field Field, value any) error {
	if d.StructureLocked() {
		return model.ErrStructureLocked
	}
	i := d.QuestionIndex(id)
	if i < 0 {
		return nil
	}
	q, err := UpdateField(d.Questions[i], field, value)
	if err != nil {
		return err
	}
	d.Questions[i] = q
	return nil
}

// DeleteQuestion removes the question with the given id. Remaining order
// fields are intentionally left with gaps: serialization renumbers by
// position, so intermediate state never reaches the backend.
func DeleteQuestion(d *model.SurveyDraft, id model.Identifier) error {
	if d.StructureLocked() {
		return model.ErrStructureLocked
	}
	i := d.QuestionIndex(id)
	if i < 0 {
		return nil
	}
	d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)
	if d.ActiveQuestion.Equal(id) {
		d.ActiveQuestion = model.Identifier{}
	}
	return nil
}

// ReorderQuestions moves a question and renumbers every order field to its
// new 1-based position. Renumbering is mandatory here: a reorder without it
// would desynchronize display order from persisted order.
func ReorderQuestions(d *model.SurveyDraft, from, to int) error {
	if d.StructureLocked() {
		return model.ErrStructureLocked
	}
	d.Questions = Move(d.Questions, from, to)
	renumber(d.Questions)
	return nil
}

// MoveQuestion is the drag-and-drop form of ReorderQuestions.
func MoveQuestion(d *model.SurveyDraft, dragged, target model.Identifier) (bool, error) {
	if d.StructureLocked() {
		return false, model.ErrStructureLocked
	}
	qs, moved := MoveByID(d.Questions, func(q model.Question) model.Identifier { return q.ID }, dragged, target)
	if moved {
		d.Questions = qs
		renumber(d.Questions)
	}
	return moved, nil
}

func renumber(qs []model.Question) {
	for i := range qs {
		qs[i].Order = i + 1
	}
}

// Activate opens the question with the given id in the full editor,
// deactivating whichever was active before.
func Activate(d *model.SurveyDraft, id model.Identifier) {
	if d.QuestionIndex(id) < 0 {
		return
	}
	d.ActiveQuestion = id
}

// Deactivate closes the active editor, leaving every question in preview.
func Deactivate(d *model.SurveyDraft) {
	d.ActiveQuestion = model.Identifier{}
}

// Payload serializes the draft into the backend-facing save shape. Order
// fields are emitted from array position, ids only for persisted records.
func Payload(d *model.SurveyDraft) model.SurveyPayload {
	p := model.SurveyPayload{
		Titulo:       d.Title,
		Descripcion:  d.Description,
		EsPublica:    d.IsPublic,
		FechaInicio:  optString(d.StartDate),
		FechaTermino: optString(d.EndDate),
		Preguntas:    make([]model.QuestionPayload, 0, len(d.Questions)),
	}
	for i, q := range d.Questions {
		p.Preguntas = append(p.Preguntas, questionPayload(q, i+1))
	}
	return p
}

// MetadataPayload is the reduced save shape used once the question
// structure is locked.
func MetadataPayload(d *model.SurveyDraft) model.SurveyMetadataPayload {
	return model.SurveyMetadataPayload{
		Titulo:       d.Title,
		Descripcion:  d.Description,
		EsPublica:    d.IsPublic,
		FechaInicio:  optString(d.StartDate),
		FechaTermino: optString(d.EndDate),
	}
}

func questionPayload(q model.Question, orden int) model.QuestionPayload {
	qp := model.QuestionPayload{
		Tipo:               q.Kind,
		EsRequerido:        q.Required,
		Orden:              orden,
		EscalaMax:          optInt(q.ScaleMax),
		EscalaLabelInicio:  optString(q.ScaleLabelStart),
		EscalaLabelFin:     optString(q.ScaleLabelEnd),
		TituloSeccion:      optString(q.SectionTitle),
		DescripcionSeccion: optString(q.SectionDescription),
		Opciones:           make([]model.OptionPayload, 0, len(q.Options)),
	}
	if q.ID.Persisted() {
		id := q.ID.Int64()
		qp.ID = &id
	}
	if q.Kind != model.KindSection {
		text := q.Text
		qp.Pregunta = &text
	}
	for _, opt := range q.Options {
		op := model.OptionPayload{OpcionTexto: opt.Text}
		if opt.ID.Persisted() {
			id := opt.ID.Int64()
			op.ID = &id
		}
		qp.Opciones = append(qp.Opciones, op)
	}
	return qp
}

// InviteeSync builds the replace-all invitee payload for the post-save sync
// call. A public survey always syncs empty sets: public surveys must never
// retain stale invitation records.
func InviteeSync(d *model.SurveyDraft) model.InviteeSyncPayload {
	if d.IsPublic {
		return model.InviteeSyncPayload{Invitados: []int64{}, Emails: ""}
	}
	ids := make([]int64, 0, len(d.Invitees))
	for _, inv := range d.Invitees {
		ids = append(ids, inv.UserID)
	}
	return model.InviteeSyncPayload{Invitados: ids, Emails: d.PendingEmails}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
