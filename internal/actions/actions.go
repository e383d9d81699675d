package actions

import "github.com/user/money-smart-kids/internal/types"

// Action is a tagged command describing one state transition. Each variant
// carries exactly the payload its transition needs.
type Action interface {
	Name() string
}

// SetScreen switches the active top-level view.
type SetScreen struct {
	Screen types.Screen `json:"screen"`
}

func (SetScreen) Name() string { return "SetScreen" }

// SelectAvatar records the chosen avatar. Reselection is allowed.
type SelectAvatar struct {
	Avatar types.Avatar `json:"avatar"`
}

func (SelectAvatar) Name() string { return "SelectAvatar" }

// UpdateProgress shallow-merges the set fields into the progress record.
// Nil fields are left untouched.
type UpdateProgress struct {
	LessonsCompleted *int      `json:"lessons_completed,omitempty"`
	QuizScore        *int      `json:"quiz_score,omitempty"`
	BadgesEarned     *[]string `json:"badges_earned,omitempty"`
	TotalTime        *int      `json:"total_time,omitempty"`
	CurrentSlide     *int      `json:"current_slide,omitempty"`
	CurrentQuestion  *int      `json:"current_question,omitempty"`
}

func (UpdateProgress) Name() string { return "UpdateProgress" }

// AddToCart appends an item to the budget cart and recomputes the totals.
type AddToCart struct {
	Item types.BudgetItem `json:"item"`
}

func (AddToCart) Name() string { return "AddToCart" }

// RemoveFromCart removes the cart item with the given id, if present.
type RemoveFromCart struct {
	ItemID string `json:"item_id"`
}

func (RemoveFromCart) Name() string { return "RemoveFromCart" }

// ResetCart empties the cart and restores the full allowance.
type ResetCart struct{}

func (ResetCart) Name() string { return "ResetCart" }

// EarnBadge records a badge id. Earning the same badge twice is a no-op.
type EarnBadge struct {
	BadgeID string `json:"badge_id"`
}

func (EarnBadge) Name() string { return "EarnBadge" }

// LoadState replaces the entire state with a snapshot, used on restore.
type LoadState struct {
	State types.AppState `json:"state"`
}

func (LoadState) Name() string { return "LoadState" }

// InitShoppingGame populates the shopping-game world from the static
// catalog and resets the round, flags and countdown.
type InitShoppingGame struct {
	Characters []types.GameCharacter `json:"characters"`
	Stores     []types.Store         `json:"stores"`
	TimeLeft   int                   `json:"time_left"`
}

func (InitShoppingGame) Name() string { return "InitShoppingGame" }

// MoveCharacter updates a character's position. The caller is responsible
// for clamping the position to the game-area bounds before dispatch.
type MoveCharacter struct {
	CharacterID string         `json:"character_id"`
	Position    types.Position `json:"position"`
}

func (MoveCharacter) Name() string { return "MoveCharacter" }

// BuyItem purchases an item for a character: money down, inventory up,
// score up by the category reward. Rejected when the character cannot
// afford the item.
type BuyItem struct {
	CharacterID string           `json:"character_id"`
	StoreID     string           `json:"store_id"`
	Item        types.BudgetItem `json:"item"`
}

func (BuyItem) Name() string { return "BuyItem" }

// StartShoppingGame flips the game into its running state.
type StartShoppingGame struct{}

func (StartShoppingGame) Name() string { return "StartShoppingGame" }

// EndShoppingGame flips the game into its completed state.
type EndShoppingGame struct{}

func (EndShoppingGame) Name() string { return "EndShoppingGame" }

// UpdateShoppingTimer sets the countdown to the given number of seconds.
type UpdateShoppingTimer struct {
	Seconds int `json:"seconds"`
}

func (UpdateShoppingTimer) Name() string { return "UpdateShoppingTimer" }

// Unknown is produced when a wire envelope names an action kind this
// build does not know. The reducer treats it as an identity transition.
type Unknown struct {
	Type string
}

func (u Unknown) Name() string { return u.Type }
