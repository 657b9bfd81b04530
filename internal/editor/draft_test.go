package editor_test

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"encuestas/internal/editor"
	"encuestas/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestNewDraftDefaults(t *testing.T) {
	d := editor.NewDraft()

	if d.Title != "Encuesta Sin Título" {
		t.Errorf("title = %q", d.Title)
	}
	if !d.IsPublic {
		t.Error("new drafts start public")
	}
	if d.StartDate == "" {
		t.Error("start date must default to today")
	}
	if !d.IsNew() {
		t.Error("fresh draft reported as persisted")
	}
}

func TestHydrate(t *testing.T) {
	rec := &model.SurveyRecord{
		ID:           7,
		Slug:         "clima-laboral",
		Titulo:       "Clima laboral",
		EsPublica:    false,
		FechaInicio:  "2026-09-01",
		FechaTermino: "2026-09-30",
		Preguntas: []model.QuestionRecord{
			{
				ID:          41,
				Pregunta:    strPtr("¿Cómo calificarías el ambiente?"),
				Tipo:        model.KindScale,
				EsRequerido: true,
				Orden:       1,
				EscalaMax:   intPtr(10),
			},
			{
				ID:    42,
				Tipo:  model.KindSingleChoice,
				Orden: 2,
				Opciones: []model.OptionRecord{
					{ID: 91, OpcionTexto: "Sí", Orden: 1},
					{ID: 92, OpcionTexto: "No", Orden: 2},
				},
			},
		},
		Invitados: []model.UserRecord{
			{ID: 3, Name: "Ana", Email: "ana@example.com"},
		},
		Invitaciones: []model.InvitationRecord{
			{Email: "pendiente1@example.com"},
			{Email: "pendiente2@example.com"},
		},
		RespuestasCount: 0,
	}

	d := editor.Hydrate(rec)

	if d.IsNew() {
		t.Error("hydrated draft reported as new")
	}
	if d.StructureLocked() {
		t.Error("structure locked with zero responses")
	}
	if len(d.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(d.Questions))
	}
	if !d.Questions[0].ID.Persisted() || d.Questions[0].ID.Int64() != 41 {
		t.Error("hydrated question lost its server id")
	}
	if d.Questions[0].ScaleMax != 10 {
		t.Errorf("scale max = %d, want 10", d.Questions[0].ScaleMax)
	}
	if len(d.Questions[1].Options) != 2 || d.Questions[1].Options[0].Text != "Sí" {
		t.Error("options not hydrated")
	}
	if len(d.Invitees) != 1 || d.Invitees[0].Label != "Ana (ana@example.com)" {
		t.Errorf("invitees = %+v", d.Invitees)
	}
	if d.PendingEmails != "pendiente1@example.com\npendiente2@example.com" {
		t.Errorf("pending emails = %q", d.PendingEmails)
	}
}

func TestPayloadDualIDSpaces(t *testing.T) {
	d := editor.NewDraft()
	d.Title = "T"

	// One question the server already knows, one created this session.
	persisted := editor.NewQuestion(model.KindShortText, 0)
	persisted.ID = model.PersistedID(15)
	d.Questions = append(d.Questions, persisted)
	if _, err := editor.AddQuestion(d, model.KindSingleChoice); err != nil {
		t.Fatalf("add question: %v", err)
	}

	p := editor.Payload(d)

	if p.Preguntas[0].ID == nil || *p.Preguntas[0].ID != 15 {
		t.Error("persisted question id missing from payload")
	}
	if p.Preguntas[1].ID != nil {
		t.Error("client-generated question id must be omitted")
	}
	if p.Preguntas[1].Opciones[0].ID != nil {
		t.Error("client-generated option id must be omitted")
	}

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), `"id":""`) || strings.Contains(string(raw), `"id":0`) {
		t.Errorf("payload leaked an empty id: %s", raw)
	}
}

func TestPayloadEmptyQuestionsMarshalsAsArray(t *testing.T) {
	d := editor.NewDraft()
	d.Title = "T"

	raw, err := json.Marshal(editor.Payload(d))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"preguntas":[]`) {
		t.Errorf("empty question list must marshal as [], got %s", raw)
	}
	if !strings.Contains(string(raw), `"titulo":"T"`) {
		t.Errorf("missing titulo: %s", raw)
	}
	if !strings.Contains(string(raw), `"es_publica":true`) {
		t.Errorf("missing es_publica: %s", raw)
	}
}

func TestPayloadOrderFollowsPosition(t *testing.T) {
	d := draftWithQuestions(t, 3)
	// Delete the middle question, leaving an order gap [1 3].
	if err := editor.DeleteQuestion(d, d.Questions[1].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	p := editor.Payload(d)

	for i, qp := range p.Preguntas {
		if qp.Orden != i+1 {
			t.Errorf("payload orden at %d = %d, want %d", i, qp.Orden, i+1)
		}
	}
}

func TestPayloadSectionFields(t *testing.T) {
	d := editor.NewDraft()
	d.Title = "T"
	sec, err := editor.AddQuestion(d, model.KindSection)
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	if err := editor.UpdateQuestion(d, sec.ID, editor.FieldSectionTitle, "Parte 1"); err != nil {
		t.Fatalf("set title: %v", err)
	}

	p := editor.Payload(d)

	if p.Preguntas[0].Pregunta != nil {
		t.Error("section text must serialize as null")
	}
	if p.Preguntas[0].TituloSeccion == nil || *p.Preguntas[0].TituloSeccion != "Parte 1" {
		t.Error("section title missing")
	}

	raw, _ := json.Marshal(p)
	if !strings.Contains(string(raw), `"pregunta":null`) {
		t.Errorf("section pregunta not null on the wire: %s", raw)
	}
}

func TestInviteeSyncClearsWhenPublic(t *testing.T) {
	d := editor.NewDraft()
	d.IsPublic = false
	d.Invitees = []model.Invitee{{UserID: 4, Label: "Ana (ana@example.com)"}}
	d.PendingEmails = "uno@example.com\ndos@example.com"

	private := editor.InviteeSync(d)
	if len(private.Invitados) != 1 || private.Invitados[0] != 4 {
		t.Errorf("invitados = %v, want [4]", private.Invitados)
	}
	if private.Emails != d.PendingEmails {
		t.Errorf("emails = %q", private.Emails)
	}

	// Flipping to public must always sync empty sets, regardless of the
	// invitee state still held by the draft.
	d.IsPublic = true
	public := editor.InviteeSync(d)
	if len(public.Invitados) != 0 || public.Emails != "" {
		t.Errorf("public sync = %+v, want empty", public)
	}

	raw, _ := json.Marshal(public)
	if !strings.Contains(string(raw), `"invitados":[]`) {
		t.Errorf("invitados must marshal as [], got %s", raw)
	}
}

func TestMetadataPayloadForLockedSurvey(t *testing.T) {
	d := editor.Hydrate(&model.SurveyRecord{
		ID:              3,
		Slug:            "con-respuestas",
		Titulo:          "Ya respondida",
		Preguntas:       []model.QuestionRecord{{ID: 41, Tipo: model.KindShortText, Orden: 1}},
		RespuestasCount: 12,
	})

	if !d.StructureLocked() {
		t.Fatal("expected locked structure")
	}
	if _, err := editor.AddQuestion(d, model.KindShortText); err != model.ErrStructureLocked {
		t.Errorf("add on locked survey: err = %v, want ErrStructureLocked", err)
	}

	// The whole question editor is read-only once responses exist, not
	// just structural operations.
	qID := d.Questions[0].ID
	if err := editor.UpdateQuestion(d, qID, editor.FieldText, "otro texto"); err != model.ErrStructureLocked {
		t.Errorf("text edit on locked survey: err = %v, want ErrStructureLocked", err)
	}
	if err := editor.UpdateQuestion(d, qID, editor.FieldRequired, true); err != model.ErrStructureLocked {
		t.Errorf("required edit on locked survey: err = %v, want ErrStructureLocked", err)
	}
	if d.Questions[0].Text != "" || d.Questions[0].Required {
		t.Error("locked question was mutated")
	}

	raw, err := json.Marshal(editor.MetadataPayload(d))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "preguntas") {
		t.Errorf("metadata payload must omit the question list: %s", raw)
	}
}

func TestValidate(t *testing.T) {
	d := editor.NewDraft()
	if err := editor.Validate(d); err != nil {
		t.Errorf("default draft should pass local validation: %v", err)
	}

	d.Title = ""
	if err := editor.Validate(d); err == nil {
		t.Error("missing title must fail local validation")
	}
}
