package orchestrator

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-addressform/pkg/address"
)

// State is the position of a session in its country-change cycle.
type State string

const (
	StateIdle     State = "idle"
	StateLoading  State = "loading"
	StateResolved State = "resolved"
	StateFailed   State = "failed"
)

// SessionOption customises a session before its first fetch.
type SessionOption func(*Session)

// OnResolved registers the callback that receives each applied result. An
// empty Result (no fields) is delivered when the country selection is
// cleared. Callbacks run on the fetch goroutine.
func OnResolved(fn func(Result)) SessionOption {
	return func(s *Session) {
		s.onResolved = fn
	}
}

// OnFailed registers the callback invoked when a fetch fails. The recommended
// caller behaviour is to fall back to an unstructured address input.
func OnFailed(fn func(countryCode string, err error)) SessionOption {
	return func(s *Session) {
		s.onFailed = fn
	}
}

// WithSessionLogger overrides the logger used for stale-result reporting.
// Defaults to the orchestrator's logger.
func WithSessionLogger(logger zerolog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session drives the reactive country-change cycle:
//
//	Idle → Loading → {Resolved | Failed}
//
// Each country or locale change starts an asynchronous schema fetch tagged
// with a generation number. Only the most recently initiated fetch may apply;
// a superseded fetch's eventual result, success or failure, is silently
// discarded so a slow response for one country can never overwrite a faster
// response for a country requested afterwards.
//
// The session persists nothing beyond the value snapshot callers feed it;
// every applied result is communicated upward through the callbacks.
type Session struct {
	orch   *Orchestrator
	logger zerolog.Logger

	onResolved func(Result)
	onFailed   func(string, error)

	mu         sync.Mutex
	generation uint64
	state      State
	country    string
	locale     string
	value      address.Value
	cancel     context.CancelFunc
	closed     bool
}

// NewSession wraps an orchestrator with the stale-suppression state machine.
func NewSession(orch *Orchestrator, options ...SessionOption) *Session {
	s := &Session{
		orch:  orch,
		state: StateIdle,
	}
	if orch != nil {
		s.logger = orch.logger
	} else {
		s.logger = zerolog.Nop()
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// SetCountry switches the selected country and starts a fetch. An empty code
// clears the selection: any pending fetch is cancelled, the session returns
// to Idle, and an empty Result is emitted so the caller renders nothing.
func (s *Session) SetCountry(countryCode string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.country = countryCode
	if countryCode == "" {
		s.generation++
		if s.cancel != nil {
			s.cancel()
			s.cancel = nil
		}
		s.state = StateIdle
		cb := s.onResolved
		s.mu.Unlock()
		if cb != nil {
			cb(Result{})
		}
		return
	}
	s.beginFetchLocked()
}

// SetLocale changes the label language and, when a country is selected,
// re-requests the schema. The field set does not vary by locale but labels
// do.
func (s *Session) SetLocale(locale string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.locale = locale
	if s.country == "" {
		s.mu.Unlock()
		return
	}
	s.beginFetchLocked()
}

// SetValue updates the address snapshot used at the next reconciliation. The
// caller keeps ownership; the session never mutates the map.
func (s *Session) SetValue(value address.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
}

// State reports the current position in the country-change cycle.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close cancels any pending fetch and prevents further transitions. Safe to
// call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// beginFetchLocked bumps the generation, cancels the superseded fetch, and
// launches the new one. The caller must hold s.mu; the lock is released
// before returning.
func (s *Session) beginFetchLocked() {
	s.generation++
	generation := s.generation
	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.state = StateLoading

	req := Request{
		CountryCode: s.country,
		Locale:      s.locale,
		Value:       s.value,
	}
	orch := s.orch
	s.mu.Unlock()

	go func() {
		result, err := orch.Resolve(ctx, req)

		s.mu.Lock()
		if s.closed || generation != s.generation {
			s.mu.Unlock()
			s.logger.Debug().
				Str("country", req.CountryCode).
				Uint64("generation", generation).
				Msg("discarding superseded schema result")
			return
		}

		if err != nil {
			s.state = StateFailed
			cb := s.onFailed
			s.mu.Unlock()
			if cb != nil {
				cb(req.CountryCode, err)
			}
			return
		}

		s.state = StateResolved
		s.value = result.Value
		cb := s.onResolved
		s.mu.Unlock()
		if cb != nil {
			cb(result)
		}
	}()
}
