package service

import (
	"context"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"encuestas/internal/editor"
	"encuestas/internal/model"
)

// SaveState is the controller's lifecycle. A submission moves Idle → Saving
// and always settles back on Idle: there is no "saved" terminal state, the
// form stays editable and only the returned result reports the outcome.
type SaveState int

const (
	StateIdle SaveState = iota
	StateSaving
)

// SaveResult is the outcome of a successful submission.
type SaveResult struct {
	Survey  *model.SurveyRecord
	Message string
	// Created signals the caller to navigate to the edit view of the new
	// record so subsequent saves become updates.
	Created bool
}

// SaveController serializes a draft, submits it, interprets validation
// errors and reconciles post-save state. The Saving state acts as a mutex:
// a second Submit while one is in flight is rejected, never queued.
type SaveController struct {
	client *Client
	log    *logrus.Entry

	mu     sync.Mutex
	state  SaveState
	errs   model.ValidationErrors
	closed bool
}

func NewSaveController(client *Client) *SaveController {
	return &SaveController{
		client: client,
		log:    logrus.WithField("component", "save_controller"),
	}
}

// State returns the current lifecycle state.
func (s *SaveController) State() SaveState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Errors returns the validation errors from the last failed submission.
// They persist until the next submission, so the editor can keep projecting
// them per question while the user corrects the draft.
func (s *SaveController) Errors() model.ValidationErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs
}

// Close marks the editor session as gone. A save still in flight will
// complete but its result is discarded instead of mutating the draft.
func (s *SaveController) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Submit serializes the draft, creates or updates the survey, then syncs
// the invitee set using the now-known survey id. On a validation failure
// the draft is untouched and the error set is retained for display; on any
// other failure the draft is likewise preserved and the caller surfaces a
// generic retry prompt. Submit never retries on its own.
func (s *SaveController) Submit(ctx context.Context, d *model.SurveyDraft) (*SaveResult, error) {
	s.mu.Lock()
	if s.state == StateSaving {
		s.mu.Unlock()
		return nil, model.ErrSaveInProgress
	}
	s.state = StateSaving
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
	}()

	creating := d.IsNew()

	var rec *model.SurveyRecord
	var err error
	if creating {
		rec, err = s.client.CreateSurvey(ctx, editor.Payload(d))
	} else if d.StructureLocked() {
		rec, err = s.client.UpdateSurvey(ctx, d.Slug, editor.MetadataPayload(d))
	} else {
		rec, err = s.client.UpdateSurvey(ctx, d.Slug, editor.Payload(d))
	}
	if err != nil {
		return nil, s.fail(err)
	}

	if err := s.client.SyncInvitees(ctx, rec.ID, editor.InviteeSync(d)); err != nil {
		return nil, s.fail(pkgerrors.Wrap(err, "sync invitees"))
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.log.Debugf("discarding save result for survey %d, session closed", rec.ID)
		return nil, model.ErrEditorClosed
	}
	s.errs = nil
	s.mu.Unlock()

	// Reconcile: replace the draft wholesale with the persisted record so
	// client-generated ids are swapped for server-assigned ones. The echoed
	// record predates the invitee sync, so the invitee fields carry over
	// from the draft: it holds exactly the set that was just synced, and
	// taking the stale echo would make the next replace-all sync delete
	// the invitations created moments ago.
	invitees := d.Invitees
	pendingEmails := d.PendingEmails
	*d = *editor.Hydrate(rec)
	d.Invitees = invitees
	d.PendingEmails = pendingEmails

	msg := "¡Encuesta actualizada con éxito!"
	if creating {
		msg = "¡Encuesta creada con éxito!"
	}
	return &SaveResult{Survey: rec, Message: msg, Created: creating}, nil
}

func (s *SaveController) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var vf *ValidationFailure
	if pkgerrors.As(err, &vf) {
		s.errs = vf.Errors
		s.log.Warnf("save rejected: %d invalid fields", len(vf.Errors))
	} else {
		s.errs = nil
		s.log.WithError(err).Error("save failed")
	}
	return err
}
