package interfaces

import (
	"github.com/user/money-smart-kids/internal/actions"
	"github.com/user/money-smart-kids/internal/types"
)

// StateStorage defines the durable slot the application state is saved to.
// Load reports ok=false when no usable prior save exists.
type StateStorage interface {
	Save(state types.AppState) error
	Load() (state types.AppState, ok bool, err error)
}

// Dispatcher defines the inbound surface of the state store: issue an
// action, read the committed snapshot back.
type Dispatcher interface {
	Dispatch(action actions.Action) types.AppState
	State() types.AppState
}
