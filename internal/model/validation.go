package model

import (
	"strconv"
	"strings"
)

// ValidationErrors maps dotted payload paths (e.g. "preguntas.2.pregunta")
// to the human-readable messages the backend returned for that field.
type ValidationErrors map[string][]string

// Has reports whether the path has at least one message.
func (v ValidationErrors) Has(path string) bool {
	return len(v[path]) > 0
}

// First returns the first message for the path, or "".
func (v ValidationErrors) First(path string) string {
	if msgs := v[path]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// ForQuestion projects the errors belonging to the question at the given
// list index, keyed by the bare field name ("pregunta", "opciones", ...).
// Only the first message per field is kept, matching how the editor
// displays them.
func (v ValidationErrors) ForQuestion(index int) map[string]string {
	prefix := "preguntas." + strconv.Itoa(index) + "."
	out := make(map[string]string)
	for path, msgs := range v {
		if !strings.HasPrefix(path, prefix) || len(msgs) == 0 {
			continue
		}
		out[strings.TrimPrefix(path, prefix)] = msgs[0]
	}
	return out
}

// QuestionHasErrors reports whether any field of the question at the given
// index failed validation.
func (v ValidationErrors) QuestionHasErrors(index int) bool {
	prefix := "preguntas." + strconv.Itoa(index) + "."
	for path, msgs := range v {
		if strings.HasPrefix(path, prefix) && len(msgs) > 0 {
			return true
		}
	}
	return false
}
