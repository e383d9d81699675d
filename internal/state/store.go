package state

import (
	"sync"

	"github.com/google/uuid"
	"github.com/user/money-smart-kids/internal/actions"
	"github.com/user/money-smart-kids/internal/interfaces"
	"github.com/user/money-smart-kids/internal/types"
	"go.uber.org/zap"
)

// Subscriber receives the committed state snapshot after every transition.
type Subscriber func(state types.AppState)

// Store owns the application state and runs the dispatch loop. Dispatches
// are serialized behind a mutex, so each transition commits (and persists)
// atomically and in the order issued.
type Store struct {
	mu          sync.Mutex
	state       types.AppState
	storage     interfaces.StateStorage
	logger      *zap.Logger
	subscribers map[string]Subscriber
}

var _ interfaces.Dispatcher = (*Store)(nil)

// NewStore creates a store seeded with the given initial state. When the
// storage slot holds a usable prior save, it replaces the seed; a missing
// or corrupt slot falls back to the seed without surfacing an error.
func NewStore(initial types.AppState, storage interfaces.StateStorage, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	st := initial.Clone()
	if storage != nil {
		saved, ok, err := storage.Load()
		if err != nil {
			logger.Warn("Failed to load saved state, starting fresh", zap.Error(err))
		} else if ok {
			st = Reduce(st, actions.LoadState{State: saved})
		}
	}

	return &Store{
		state:       st,
		storage:     storage,
		logger:      logger,
		subscribers: make(map[string]Subscriber),
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() types.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch runs one action through the reducer, persists the committed
// state, notifies subscribers, and returns the new snapshot. Persistence
// failures are logged and never surfaced: worst case is a stale slot.
func (s *Store) Dispatch(action actions.Action) types.AppState {
	s.mu.Lock()

	dispatchID := uuid.New().String()
	next := Reduce(s.state, action)
	s.state = next

	if s.storage != nil {
		if err := s.storage.Save(next); err != nil {
			s.logger.Error("Failed to save state",
				zap.String("dispatch_id", dispatchID),
				zap.String("action", action.Name()),
				zap.Error(err))
		}
	}

	snapshot := next.Clone()
	subs := make([]Subscriber, 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	s.logger.Debug("Dispatched action",
		zap.String("dispatch_id", dispatchID),
		zap.String("action", action.Name()))

	for _, sub := range subs {
		sub(snapshot)
	}

	return snapshot
}

// Subscribe registers a callback invoked with the committed snapshot after
// every dispatch. The returned function removes the subscription; it is
// safe to call more than once.
func (s *Store) Subscribe(sub Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.subscribers[id] = sub

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}
