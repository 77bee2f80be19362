package service

import (
	"sync"

	"github.com/google/uuid"

	perr "redpen/internal/platform/errors"
)

// Session states. A session is a tiny state machine:
// idle -> submitting -> idle. Submitting rejects new submissions by
// contract, there is no queueing
const (
	StateIdle       = "idle"
	StateSubmitting = "submitting"
)

// sessionGate tracks in-flight submissions per session id. Only submitting
// sessions are recorded; an idle session needs no entry, so the map stays
// bounded by the number of concurrent submissions
type sessionGate struct {
	mu sync.Mutex
	m  map[string]string // id -> state, present only while submitting
}

func newSessionGate() *sessionGate {
	return &sessionGate{m: make(map[string]string)}
}

// open issues a fresh session id. Idle sessions carry no server state
func (g *sessionGate) open() string {
	return uuid.NewString()
}

// begin transitions the session to submitting. A session already submitting
// rejects the transition. Unknown ids are admitted as fresh sessions so
// callers without an explicit session still get per-id gating
func (g *sessionGate) begin(id string) error {
	if id == "" {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.m[id] == StateSubmitting {
		return perr.Conflictf("session %s already has a submission in flight", id)
	}
	g.m[id] = StateSubmitting
	return nil
}

// end returns the session to idle by dropping its entry
func (g *sessionGate) end(id string) {
	if id == "" {
		return
	}
	g.mu.Lock()
	delete(g.m, id)
	g.mu.Unlock()
}
