package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"encuestas/internal/model"
)

// UserSearch debounces invitee-picker queries so each keystroke does not
// become a request. Only the most recent query is ever delivered; results
// for superseded queries are dropped.
type UserSearch struct {
	client *Client
	delay  time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewUserSearch wraps the client with a debounce window.
func NewUserSearch(client *Client, delay time.Duration) *UserSearch {
	return &UserSearch{client: client, delay: delay}
}

// Query schedules a search for q and invokes deliver with the results once
// the debounce window elapses without a newer query. Queries shorter than
// two characters resolve immediately with no results and no request, the
// same threshold the picker uses.
func (u *UserSearch) Query(ctx context.Context, q string, deliver func([]model.UserRecord, error)) {
	q = strings.TrimSpace(q)

	u.mu.Lock()
	u.seq++
	seq := u.seq
	if u.timer != nil {
		u.timer.Stop()
		u.timer = nil
	}
	u.mu.Unlock()

	if len([]rune(q)) < 2 {
		deliver(nil, nil)
		return
	}

	u.mu.Lock()
	u.timer = time.AfterFunc(u.delay, func() {
		users, err := u.client.SearchUsers(ctx, q)

		u.mu.Lock()
		stale := seq != u.seq
		u.mu.Unlock()
		if stale {
			return
		}
		deliver(users, err)
	})
	u.mu.Unlock()
}

// Stop cancels any pending query.
func (u *UserSearch) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.seq++
	if u.timer != nil {
		u.timer.Stop()
		u.timer = nil
	}
}
