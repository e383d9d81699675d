package state

import (
	"github.com/user/money-smart-kids/internal/actions"
	"github.com/user/money-smart-kids/internal/types"
)

// Scoring rewards per item category in the shopping game.
const (
	RewardNeed = 15
	RewardSave = 10
	RewardWant = 5
)

// Defaults for a fresh application state.
const (
	DefaultBudgetTotal   = 20
	DefaultShoppingTime  = 180
	DefaultNeedsTarget   = 8
	DefaultWantsTarget   = 7
	DefaultSavingsTarget = 5
)

// InitialState returns the state a brand-new session starts from.
func InitialState() types.AppState {
	return types.AppState{
		CurrentScreen:  types.ScreenAvatarSelection,
		SelectedAvatar: nil,
		Progress: types.Progress{
			BadgesEarned: []string{},
		},
		Budget: types.Budget{
			Total:     DefaultBudgetTotal,
			Spent:     0,
			Remaining: DefaultBudgetTotal,
			Cart:      []types.BudgetItem{},
			Categories: types.CategoryTargets{
				Needs:   DefaultNeedsTarget,
				Wants:   DefaultWantsTarget,
				Savings: DefaultSavingsTarget,
			},
		},
		ShoppingGame: types.ShoppingGameState{
			Characters:    []types.GameCharacter{},
			Stores:        []types.Store{},
			GameStarted:   false,
			GameCompleted: false,
			TimeLeft:      DefaultShoppingTime,
			Round:         1,
		},
	}
}

// CategoryReward returns the score increase for buying an item of the
// given category. Unknown categories are worth nothing.
func CategoryReward(c types.Category) int {
	switch c {
	case types.CategoryNeed:
		return RewardNeed
	case types.CategorySave:
		return RewardSave
	case types.CategoryWant:
		return RewardWant
	default:
		return 0
	}
}

// Reduce computes the next application state for an action. It is a pure
// function: no I/O, no randomness, and it never fails. Invalid payloads
// (absent cart item, unknown character, insufficient funds) and unknown
// action kinds yield the input state unchanged.
func Reduce(s types.AppState, action actions.Action) types.AppState {
	switch a := action.(type) {
	case actions.SetScreen:
		next := s.Clone()
		next.CurrentScreen = a.Screen
		return next

	case actions.SelectAvatar:
		next := s.Clone()
		av := a.Avatar
		next.SelectedAvatar = &av
		return next

	case actions.UpdateProgress:
		return reduceUpdateProgress(s, a)
	case *actions.UpdateProgress:
		return reduceUpdateProgress(s, *a)

	case actions.AddToCart:
		// Cart membership is unique by item id: a second add of the same
		// item is a no-op, keeping the budget invariants safe even for
		// callers that skip the availability check.
		for _, it := range s.Budget.Cart {
			if it.ID == a.Item.ID {
				return s
			}
		}
		next := s.Clone()
		next.Budget.Cart = append(next.Budget.Cart, a.Item)
		next.Budget.Spent += a.Item.Price
		next.Budget.Remaining = next.Budget.Total - next.Budget.Spent
		return next

	case actions.RemoveFromCart:
		idx := -1
		for i, it := range s.Budget.Cart {
			if it.ID == a.ItemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return s
		}
		next := s.Clone()
		removed := next.Budget.Cart[idx]
		next.Budget.Cart = append(next.Budget.Cart[:idx], next.Budget.Cart[idx+1:]...)
		next.Budget.Spent -= removed.Price
		next.Budget.Remaining = next.Budget.Total - next.Budget.Spent
		return next

	case actions.ResetCart:
		next := s.Clone()
		next.Budget.Cart = []types.BudgetItem{}
		next.Budget.Spent = 0
		next.Budget.Remaining = next.Budget.Total
		return next

	case actions.EarnBadge:
		for _, id := range s.Progress.BadgesEarned {
			if id == a.BadgeID {
				return s
			}
		}
		next := s.Clone()
		next.Progress.BadgesEarned = append(next.Progress.BadgesEarned, a.BadgeID)
		return next

	case actions.LoadState:
		return a.State.Clone()

	case actions.InitShoppingGame:
		next := s.Clone()
		sg := types.ShoppingGameState{
			Characters:    make([]types.GameCharacter, len(a.Characters)),
			Stores:        make([]types.Store, len(a.Stores)),
			GameStarted:   false,
			GameCompleted: false,
			TimeLeft:      a.TimeLeft,
			Round:         1,
		}
		for i, c := range a.Characters {
			sg.Characters[i] = c.Clone()
		}
		for i, st := range a.Stores {
			sg.Stores[i] = st.Clone()
		}
		if sg.TimeLeft <= 0 {
			sg.TimeLeft = DefaultShoppingTime
		}
		if len(sg.Characters) > 0 {
			sg.CurrentCharacter = sg.Characters[0].ID
		}
		next.ShoppingGame = sg
		return next

	case actions.MoveCharacter:
		idx := characterIndex(s.ShoppingGame.Characters, a.CharacterID)
		if idx < 0 {
			return s
		}
		next := s.Clone()
		next.ShoppingGame.Characters[idx].Position = a.Position
		return next

	case actions.BuyItem:
		idx := characterIndex(s.ShoppingGame.Characters, a.CharacterID)
		if idx < 0 || s.ShoppingGame.Characters[idx].Money < a.Item.Price {
			return s
		}
		next := s.Clone()
		ch := &next.ShoppingGame.Characters[idx]
		ch.Money -= a.Item.Price
		ch.Inventory = append(ch.Inventory, a.Item)
		ch.Score += CategoryReward(a.Item.Category)
		return next

	case actions.StartShoppingGame:
		next := s.Clone()
		next.ShoppingGame.GameStarted = true
		next.ShoppingGame.GameCompleted = false
		return next

	case actions.EndShoppingGame:
		next := s.Clone()
		next.ShoppingGame.GameStarted = false
		next.ShoppingGame.GameCompleted = true
		return next

	case actions.UpdateShoppingTimer:
		next := s.Clone()
		next.ShoppingGame.TimeLeft = a.Seconds
		return next

	default:
		return s
	}
}

func reduceUpdateProgress(s types.AppState, a actions.UpdateProgress) types.AppState {
	next := s.Clone()
	if a.LessonsCompleted != nil {
		next.Progress.LessonsCompleted = *a.LessonsCompleted
	}
	if a.QuizScore != nil {
		next.Progress.QuizScore = *a.QuizScore
	}
	if a.BadgesEarned != nil {
		next.Progress.BadgesEarned = append([]string(nil), *a.BadgesEarned...)
	}
	if a.TotalTime != nil {
		next.Progress.TotalTime = *a.TotalTime
	}
	if a.CurrentSlide != nil {
		next.Progress.CurrentSlide = *a.CurrentSlide
	}
	if a.CurrentQuestion != nil {
		next.Progress.CurrentQuestion = *a.CurrentQuestion
	}
	return next
}

func characterIndex(chars []types.GameCharacter, id string) int {
	for i, c := range chars {
		if c.ID == id {
			return i
		}
	}
	return -1
}
