package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/telemetry"
	"resume-builder-backend/resume/model"
	"resume-builder-backend/resume/render"
)

// ErrNoSession is returned for an unknown session id.
var ErrNoSession = errors.New("session not found")

// LoadNew is the sentinel name that resets the session to the empty document
// instead of fetching from storage.
const LoadNew = "new"

// State is a point-in-time copy of a session's document and template choice.
type State struct {
	Doc      model.ResumeDocument `json:"doc"`
	Template string               `json:"template"`
}

// Store holds per-session editing state. Each session is a single logical
// actor; the mutex only serializes the handful of in-flight requests a tab
// can produce. No validation happens here, that belongs to forms and flows.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
}

type sessionState struct {
	mu       sync.Mutex
	doc      model.ResumeDocument
	template string
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*sessionState)}
}

// Create registers a new session seeded with the empty or example document
// and the default template, and returns its id.
func (s *Store) Create(seedExample bool) (string, State) {
	doc := model.Empty()
	if seedExample {
		doc = model.Example()
	}
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = &sessionState{doc: doc, template: render.DefaultTemplate}
	s.mu.Unlock()

	return id, State{Doc: doc.Clone(), Template: render.DefaultTemplate}
}

// Drop removes a session. Persisted copies survive independently.
func (s *Store) Drop(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Store) get(id string) (*sessionState, error) {
	s.mu.RLock()
	state, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNoSession
	}
	return state, nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot(id string) (State, error) {
	state, err := s.get(id)
	if err != nil {
		return State{}, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	return State{Doc: state.doc.Clone(), Template: state.template}, nil
}

// Replace swaps in a full replacement document.
func (s *Store) Replace(id string, doc model.ResumeDocument) error {
	return s.Update(id, func(model.ResumeDocument) model.ResumeDocument {
		return doc
	})
}

// Update applies a functional update: fn receives a copy of the previous
// value and its result replaces the state atomically. No partial-field state
// is ever observable.
func (s *Store) Update(id string, fn func(model.ResumeDocument) model.ResumeDocument) error {
	state, err := s.get(id)
	if err != nil {
		return err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.doc = fn(state.doc.Clone()).Normalize().Clone()
	return nil
}

// SetTemplate records the template selection. Selection lifecycle is
// independent of the document's.
func (s *Store) SetTemplate(id, template string) error {
	state, err := s.get(id)
	if err != nil {
		return err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.template = template
	return nil
}

// LoadInto replaces the session's document wholesale from storage. The
// sentinel name "new" resets to the empty document without fetching. A
// storage failure never propagates: the session falls back to the empty
// document and the failure is reported through the returned notice.
func (s *Store) LoadInto(ctx context.Context, repo resumes.Repo, id, ownerID, name string) (State, string, error) {
	state, err := s.get(id)
	if err != nil {
		return State{}, "", err
	}

	var notice string
	doc := model.Empty()
	if name != LoadNew {
		loaded, loadErr := repo.Load(ctx, ownerID, name)
		switch {
		case loadErr == nil:
			doc = loaded
		case errors.Is(loadErr, resumes.ErrNotFound):
			notice = fmt.Sprintf("resume %q was not found; starting from a blank document", name)
		default:
			telemetry.Error("session.load_failed", map[string]any{
				"session": id, "name": name, "err": loadErr.Error(),
			})
			notice = fmt.Sprintf("resume %q could not be loaded; starting from a blank document", name)
		}
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	state.doc = doc.Clone()
	return State{Doc: doc.Clone(), Template: state.template}, notice, nil
}
