package main

import (
	"context"
	"errors"
	"log"
	"time"

	"encuestas/config"
	"encuestas/internal/auth"
	"encuestas/internal/editor"
	"encuestas/internal/model"
	"encuestas/internal/service"
)

// Seeds a sample survey through the full editor pipeline: draft, question
// edits, reorder, save, invitee sync. Useful against a fresh backend.
func main() {
	cfg := config.Load()

	client := service.NewClient(cfg, auth.NewStatic(cfg.AuthToken))
	controller := service.NewSaveController(client)

	draft := editor.NewDraft()
	draft.Title = "Encuesta de Satisfacción"
	draft.Description = "Cuéntanos tu experiencia con el nuevo servicio."

	intro, err := editor.AddQuestion(draft, model.KindSection)
	if err != nil {
		log.Fatal(err)
	}
	must(editor.UpdateQuestion(draft, intro.ID, editor.FieldSectionTitle, "Sobre ti"))

	choice, _ := editor.AddQuestion(draft, model.KindSingleChoice)
	must(editor.UpdateQuestion(draft, choice.ID, editor.FieldText, "¿Con qué frecuencia usas el servicio?"))
	must(editor.UpdateQuestion(draft, choice.ID, editor.FieldRequired, true))

	q := *draft.Question(choice.ID)
	q = editor.UpdateOptionText(q, q.Options[0].ID, "Diariamente")
	q = editor.AddOption(q)
	q = editor.UpdateOptionText(q, q.Options[1].ID, "Algunas veces por semana")
	q = editor.AddOption(q)
	q = editor.UpdateOptionText(q, q.Options[2].ID, "Casi nunca")
	draft.Questions[draft.QuestionIndex(choice.ID)] = q

	scale, _ := editor.AddQuestion(draft, model.KindScale)
	must(editor.UpdateQuestion(draft, scale.ID, editor.FieldText, "¿Qué tan satisfecho estás en general?"))
	must(editor.UpdateQuestion(draft, scale.ID, editor.FieldScaleLabelStart, "Nada satisfecho"))
	must(editor.UpdateQuestion(draft, scale.ID, editor.FieldScaleLabelEnd, "Muy satisfecho"))

	// Put the scale right after the intro section.
	must(editor.ReorderQuestions(draft, 2, 1))

	if err := editor.Validate(draft); err != nil {
		log.Fatalf("draft failed local validation: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := controller.Submit(ctx, draft)
	if err != nil {
		var vf *service.ValidationFailure
		if errors.As(err, &vf) {
			for i := range draft.Questions {
				for field, msg := range vf.Errors.ForQuestion(i) {
					log.Printf("question %d, %s: %s", i+1, field, msg)
				}
			}
		}
		log.Fatalf("seed failed: %v", err)
	}

	log.Printf("%s id=%d slug=%s", result.Message, result.Survey.ID, result.Survey.Slug)
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
