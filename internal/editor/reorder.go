package editor

import "encuestas/internal/model"

// Move returns a copy of list with the element at from moved to to, shifting
// everything in between. Out-of-range indexes and from == to leave the list
// unchanged.
func Move[T any](list []T, from, to int) []T {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) || from == to {
		return list
	}
	out := make([]T, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)
	out = append(out[:to], append([]T{list[from]}, out[to:]...)...)
	return out
}

// MoveByID applies Move in terms of a dragged item and a drop target, the
// shape drag-and-drop input delivers. Dropping an item onto itself or onto
// an unknown target is a no-op, as is dragging the sole remaining item.
// The second return value reports whether anything moved.
func MoveByID[T any](list []T, idOf func(T) model.Identifier, dragged, target model.Identifier) ([]T, bool) {
	if len(list) < 2 || dragged.Equal(target) {
		return list, false
	}
	from, to := -1, -1
	for i, item := range list {
		switch {
		case idOf(item).Equal(dragged):
			from = i
		case idOf(item).Equal(target):
			to = i
		}
	}
	if from < 0 || to < 0 {
		return list, false
	}
	return Move(list, from, to), true
}
