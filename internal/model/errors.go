package model

import "errors"

var (
	ErrNotFound        = errors.New("survey not found or not accessible")
	ErrSaveInProgress  = errors.New("a save is already in progress")
	ErrStructureLocked = errors.New("survey already has responses, question structure is locked")
	ErrUnknownKind     = errors.New("unknown question kind")
	ErrEditorClosed    = errors.New("editor session closed, save result discarded")
)
