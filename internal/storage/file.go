package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/user/money-smart-kids/internal/interfaces"
	"github.com/user/money-smart-kids/internal/types"
	"go.uber.org/zap"
)

// FileStorage persists the application state as a JSON file on disk.
type FileStorage struct {
	savePath  string
	logger    *zap.Logger
	stateLock sync.Mutex
}

var _ interfaces.StateStorage = (*FileStorage)(nil)

// NewFileStorage creates a file-backed state slot at savePath.
func NewFileStorage(savePath string, logger *zap.Logger) *FileStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStorage{
		savePath: savePath,
		logger:   logger,
	}
}

// Save writes the state to disk, creating the directory if needed.
func (fs *FileStorage) Save(state types.AppState) error {
	fs.stateLock.Lock()
	defer fs.stateLock.Unlock()

	dir := filepath.Dir(fs.savePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(fs.savePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	return nil
}

// Load reads the state back from disk. A missing file or an unparseable
// payload is reported as absent (ok=false) rather than an error, so the
// caller falls back to a fresh initial state.
func (fs *FileStorage) Load() (types.AppState, bool, error) {
	fs.stateLock.Lock()
	defer fs.stateLock.Unlock()

	if _, err := os.Stat(fs.savePath); os.IsNotExist(err) {
		return types.AppState{}, false, nil
	}

	data, err := os.ReadFile(fs.savePath)
	if err != nil {
		return types.AppState{}, false, fmt.Errorf("failed to read state file: %w", err)
	}

	var state types.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		fs.logger.Warn("Saved state is corrupt, treating as absent",
			zap.String("path", fs.savePath),
			zap.Error(err))
		return types.AppState{}, false, nil
	}

	normalize(&state)
	return state, true, nil
}

// normalize re-initializes nil collections so loaded snapshots behave the
// same as freshly built ones.
func normalize(state *types.AppState) {
	if state.Progress.BadgesEarned == nil {
		state.Progress.BadgesEarned = []string{}
	}
	if state.Budget.Cart == nil {
		state.Budget.Cart = []types.BudgetItem{}
	}
	if state.ShoppingGame.Characters == nil {
		state.ShoppingGame.Characters = []types.GameCharacter{}
	}
	if state.ShoppingGame.Stores == nil {
		state.ShoppingGame.Stores = []types.Store{}
	}
	for i := range state.ShoppingGame.Characters {
		if state.ShoppingGame.Characters[i].Inventory == nil {
			state.ShoppingGame.Characters[i].Inventory = []types.BudgetItem{}
		}
	}
}
