package game

import (
	"sync"
	"time"

	"github.com/user/money-smart-kids/internal/actions"
	"github.com/user/money-smart-kids/internal/content"
	"github.com/user/money-smart-kids/internal/interfaces"
	"go.uber.org/zap"
)

// ShoppingTimer drives the shopping-game countdown. While the game is
// running it dispatches one decrement per tick; when the countdown hits
// zero it ends the game, awards the completion badge and goes idle.
type ShoppingTimer struct {
	dispatcher interfaces.Dispatcher
	interval   time.Duration
	logger     *zap.Logger

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
}

// NewShoppingTimer creates a timer ticking at the given interval.
func NewShoppingTimer(dispatcher interfaces.Dispatcher, interval time.Duration, logger *zap.Logger) *ShoppingTimer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &ShoppingTimer{
		dispatcher: dispatcher,
		interval:   interval,
		logger:     logger,
	}
}

// Start begins ticking. Starting an already-running timer is a no-op.
func (t *ShoppingTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}
	t.running = true
	t.stopChan = make(chan struct{})

	go t.run(t.stopChan)
}

// Stop cancels the timer. No tick is delivered after Stop returns, so a
// stale tick can never leak into a future game session. Stopping an idle
// timer is a no-op.
func (t *ShoppingTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}
	t.running = false
	close(t.stopChan)
}

// Running reports whether the timer is currently ticking.
func (t *ShoppingTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *ShoppingTimer) run(stopChan chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if done := t.Tick(); done {
				t.Stop()
				return
			}
		case <-stopChan:
			return
		}
	}
}

// Tick performs one countdown step and reports whether the game finished.
// It is exported so tests can drive the countdown deterministically.
func (t *ShoppingTimer) Tick() bool {
	sg := t.dispatcher.State().ShoppingGame
	if !sg.GameStarted {
		return false
	}

	timeLeft := sg.TimeLeft
	if timeLeft > 0 {
		timeLeft--
		t.dispatcher.Dispatch(actions.UpdateShoppingTimer{Seconds: timeLeft})
	}

	if timeLeft > 0 {
		return false
	}

	t.logger.Info("Shopping game time is up")
	t.dispatcher.Dispatch(actions.EndShoppingGame{})
	t.dispatcher.Dispatch(actions.EarnBadge{BadgeID: content.BadgeShoppingMaster})
	return true
}
