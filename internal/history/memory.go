package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smukkama/crop-advisory/internal/alerting"
)

// MemoryStore is a process-local Store guarded by a single mutex
type MemoryStore struct {
	mu        sync.Mutex
	entries   []Entry // newest first
	sent      map[string]bool
	dismissed map[string]map[alerting.AlertType]bool
	clock     Clock
}

// NewMemoryStore creates an empty store. A nil clock uses RealClock.
func NewMemoryStore(clock Clock) *MemoryStore {
	if clock == nil {
		clock = RealClock{}
	}
	return &MemoryStore{
		sent:      make(map[string]bool),
		dismissed: make(map[string]map[alerting.AlertType]bool),
		clock:     clock,
	}
}

func (s *MemoryStore) ShouldNotify(_ context.Context, alert alerting.WeatherAlert, day time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.sent[SuppressionKey(alert.Type, day)], nil
}

func (s *MemoryStore) Record(_ context.Context, alert alerting.WeatherAlert, day time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sent[SuppressionKey(alert.Type, day)] = true

	entry := newEntry(uuid.NewString(), alert, day, s.clock.Now())
	s.entries = append([]Entry{entry}, s.entries...)
	if len(s.entries) > Limit {
		s.entries = s.entries[:Limit]
	}
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.sent = make(map[string]bool)
	return nil
}

// Claim takes the suppression key if nobody holds it yet
func (s *MemoryStore) Claim(_ context.Context, alertType alerting.AlertType, day time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := SuppressionKey(alertType, day)
	if s.sent[key] {
		return false, nil
	}
	s.sent[key] = true
	return true, nil
}

func (s *MemoryStore) Release(_ context.Context, alertType alerting.AlertType, day time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sent, SuppressionKey(alertType, day))
	return nil
}

func (s *MemoryStore) Dismiss(_ context.Context, alertType alerting.AlertType, day time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := day.Format(DayLayout)
	if s.dismissed[d] == nil {
		s.dismissed[d] = make(map[alerting.AlertType]bool)
	}
	s.dismissed[d][alertType] = true
	return nil
}

func (s *MemoryStore) Dismissed(_ context.Context, day time.Time) (map[alerting.AlertType]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[alerting.AlertType]bool)
	for t := range s.dismissed[day.Format(DayLayout)] {
		out[t] = true
	}
	return out, nil
}
