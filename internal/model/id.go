package model

import (
	"strconv"

	"github.com/google/uuid"
)

// Identifier covers the editor's two id spaces. Records the backend has
// already persisted carry integer ids; records created during the current
// editing session carry an opaque client token until the first save assigns
// them a real id. A token is never numeric, so the spaces cannot collide.
type Identifier struct {
	numeric int64
	token   string
}

// PersistedID wraps a server-assigned integer id.
func PersistedID(id int64) Identifier {
	return Identifier{numeric: id}
}

// NewDraftID generates a fresh client-side identifier.
func NewDraftID() Identifier {
	return Identifier{token: uuid.NewString()}
}

// DraftID wraps an existing client token.
func DraftID(token string) Identifier {
	return Identifier{token: token}
}

// Persisted reports whether the identifier was assigned by the backend.
func (id Identifier) Persisted() bool {
	return id.numeric > 0
}

// Int64 returns the server-assigned id. Only valid when Persisted.
func (id Identifier) Int64() int64 {
	return id.numeric
}

// IsZero reports whether the identifier is unset.
func (id Identifier) IsZero() bool {
	return id.numeric == 0 && id.token == ""
}

func (id Identifier) Equal(other Identifier) bool {
	return id.numeric == other.numeric && id.token == other.token
}

func (id Identifier) String() string {
	if id.Persisted() {
		return strconv.FormatInt(id.numeric, 10)
	}
	return id.token
}
