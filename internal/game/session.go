package game

import (
	"errors"
	"sync"
	"time"

	"github.com/user/money-smart-kids/config"
	"github.com/user/money-smart-kids/internal/actions"
	"github.com/user/money-smart-kids/internal/content"
	"github.com/user/money-smart-kids/internal/interfaces"
	"github.com/user/money-smart-kids/internal/state"
	"github.com/user/money-smart-kids/internal/types"
	"go.uber.org/zap"
)

// Domain errors returned by session flows.
var (
	ErrAvatarNotFound    = errors.New("avatar not found")
	ErrNoAvatarSelected  = errors.New("no avatar selected")
	ErrInvalidScreen     = errors.New("invalid screen")
	ErrItemNotFound      = errors.New("item not found")
	ErrItemAlreadyInCart = errors.New("item already in cart")
	ErrOverBudget        = errors.New("not enough allowance remaining")
	ErrNoActiveQuestion  = errors.New("no active question")
	ErrInvalidAnswer     = errors.New("invalid answer option")
	ErrCharacterNotFound = errors.New("character not found")
	ErrStoreNotFound     = errors.New("store not found")
	ErrNotEnoughMoney    = errors.New("not enough money")
)

// Session drives the game flows the presentation layer triggers: it
// validates against the current snapshot and the content catalog, then
// dispatches the resulting actions.
type Session struct {
	store   interfaces.Dispatcher
	catalog *content.Catalog
	cfg     config.Config
	timer   *ShoppingTimer
	Logger  *zap.Logger

	mu        sync.Mutex
	quizScore int
}

// NewSession creates a session over the given store and catalog.
func NewSession(store interfaces.Dispatcher, catalog *content.Catalog, cfg config.Config) *Session {
	s := &Session{
		store:   store,
		catalog: catalog,
		cfg:     cfg,
		Logger:  zap.NewNop(),
	}
	s.timer = NewShoppingTimer(store, time.Duration(cfg.Game.TickInterval)*time.Second, s.Logger)
	return s
}

// SetLogger installs the logger used by the session and its timer.
func (s *Session) SetLogger(logger *zap.Logger) {
	s.Logger = logger
	s.timer.logger = logger
}

// Timer exposes the shopping-game countdown, mainly for tests and shutdown.
func (s *Session) Timer() *ShoppingTimer {
	return s.timer
}

// State returns the current committed snapshot.
func (s *Session) State() types.AppState {
	return s.store.State()
}

// ChooseAvatar records the avatar with the given id as selected.
func (s *Session) ChooseAvatar(avatarID string) error {
	avatar, ok := s.catalog.AvatarByID(avatarID)
	if !ok {
		return ErrAvatarNotFound
	}

	s.store.Dispatch(actions.SelectAvatar{Avatar: avatar})
	s.Logger.Info("Avatar selected", zap.String("avatar_id", avatarID))
	return nil
}

// StartJourney moves from avatar selection into the learning module. It
// requires an avatar to have been chosen.
func (s *Session) StartJourney() error {
	if s.store.State().SelectedAvatar == nil {
		return ErrNoAvatarSelected
	}

	s.store.Dispatch(actions.SetScreen{Screen: types.ScreenLearningModule})
	return nil
}

// Navigate switches to the given screen. Leaving the shopping game cancels
// its countdown so a stale tick cannot touch a future game.
func (s *Session) Navigate(screen types.Screen) error {
	if !screen.Valid() {
		return ErrInvalidScreen
	}

	if screen != types.ScreenShoppingGame {
		s.timer.Stop()
	}
	s.store.Dispatch(actions.SetScreen{Screen: screen})
	return nil
}

// NextSlide advances the learning module. Completing the final slide
// records the finished lessons, awards the money-master badge and moves on
// to the quiz.
func (s *Session) NextSlide() {
	st := s.store.State()
	slideCount := len(s.catalog.Slides)

	if st.Progress.CurrentSlide < slideCount-1 {
		next := st.Progress.CurrentSlide + 1
		s.store.Dispatch(actions.UpdateProgress{CurrentSlide: &next})
		return
	}

	s.store.Dispatch(actions.UpdateProgress{LessonsCompleted: &slideCount})
	s.store.Dispatch(actions.EarnBadge{BadgeID: content.BadgeMoneyMaster})
	s.store.Dispatch(actions.SetScreen{Screen: types.ScreenQuizGame})
	s.Logger.Info("Learning module completed", zap.Int("slides", slideCount))
}

// PrevSlide steps the learning module back one slide.
func (s *Session) PrevSlide() {
	st := s.store.State()
	if st.Progress.CurrentSlide > 0 {
		prev := st.Progress.CurrentSlide - 1
		s.store.Dispatch(actions.UpdateProgress{CurrentSlide: &prev})
	}
}

// QuizAnswer reports the outcome of answering one quiz question.
type QuizAnswer struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
	Score       int    `json:"score"`
	Completed   bool   `json:"completed"`
}

// AnswerQuestion grades the answer to the current question and advances
// the quiz. Finishing the last question commits the score, awards the
// first-quiz badge and moves on to the budgeting game.
func (s *Session) AnswerQuestion(optionIndex int) (QuizAnswer, error) {
	st := s.store.State()
	questions := s.catalog.Questions

	idx := st.Progress.CurrentQuestion
	if idx < 0 || idx >= len(questions) {
		return QuizAnswer{}, ErrNoActiveQuestion
	}
	question := questions[idx]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return QuizAnswer{}, ErrInvalidAnswer
	}

	s.mu.Lock()
	correct := optionIndex == question.CorrectAnswer
	if correct {
		s.quizScore++
	}
	score := s.quizScore
	s.mu.Unlock()

	answer := QuizAnswer{
		Correct:     correct,
		Explanation: question.Explanation,
		Score:       score,
	}

	if idx < len(questions)-1 {
		next := idx + 1
		s.store.Dispatch(actions.UpdateProgress{CurrentQuestion: &next})
		return answer, nil
	}

	// Quiz completed
	answer.Completed = true
	s.store.Dispatch(actions.UpdateProgress{QuizScore: &score})
	s.store.Dispatch(actions.EarnBadge{BadgeID: content.BadgeFirstQuiz})
	s.store.Dispatch(actions.SetScreen{Screen: types.ScreenBudgetingGame})
	s.Logger.Info("Quiz completed", zap.Int("score", score), zap.Int("questions", len(questions)))
	return answer, nil
}

// ResetQuiz rewinds the quiz to its first question and clears the running
// score.
func (s *Session) ResetQuiz() {
	s.mu.Lock()
	s.quizScore = 0
	s.mu.Unlock()

	zero := 0
	s.store.Dispatch(actions.UpdateProgress{CurrentQuestion: &zero})
}

// AddItem puts a catalog item into the budget cart. The same item cannot
// be added twice, and the cart cannot exceed the allowance.
func (s *Session) AddItem(itemID string) error {
	item, ok := s.catalog.ItemByID(itemID)
	if !ok {
		return ErrItemNotFound
	}

	budget := s.store.State().Budget
	for _, it := range budget.Cart {
		if it.ID == itemID {
			return ErrItemAlreadyInCart
		}
	}
	if budget.Remaining < item.Price {
		return ErrOverBudget
	}

	s.store.Dispatch(actions.AddToCart{Item: item})
	return nil
}

// RemoveItem takes an item out of the budget cart. Removing an item that
// is not in the cart is a no-op.
func (s *Session) RemoveItem(itemID string) {
	s.store.Dispatch(actions.RemoveFromCart{ItemID: itemID})
}

// ResetBudget empties the cart and restores the full allowance.
func (s *Session) ResetBudget() {
	s.store.Dispatch(actions.ResetCart{})
}

// BudgetReview summarizes a reviewed budget.
type BudgetReview struct {
	Spent        int  `json:"spent"`
	Remaining    int  `json:"remaining"`
	NeedsTotal   int  `json:"needs_total"`
	WantsTotal   int  `json:"wants_total"`
	SavingsTotal int  `json:"savings_total"`
	SavedMoney   bool `json:"saved_money"`
}

// ReviewBudget finishes the budget challenge: it always awards budget-pro,
// awards super-saver when the cart holds a savings item, and moves on to
// the shopping game.
func (s *Session) ReviewBudget() BudgetReview {
	budget := s.store.State().Budget

	review := BudgetReview{
		Spent:     budget.Spent,
		Remaining: budget.Remaining,
	}
	for _, it := range budget.Cart {
		switch it.Category {
		case types.CategoryNeed:
			review.NeedsTotal += it.Price
		case types.CategoryWant:
			review.WantsTotal += it.Price
		case types.CategorySave:
			review.SavingsTotal += it.Price
			review.SavedMoney = true
		}
	}

	if review.SavedMoney {
		s.store.Dispatch(actions.EarnBadge{BadgeID: content.BadgeSuperSaver})
	}
	s.store.Dispatch(actions.EarnBadge{BadgeID: content.BadgeBudgetPro})
	s.store.Dispatch(actions.SetScreen{Screen: types.ScreenShoppingGame})

	s.Logger.Info("Budget reviewed",
		zap.Int("spent", review.Spent),
		zap.Int("remaining", review.Remaining),
		zap.Bool("saved_money", review.SavedMoney))
	return review
}

// EnterShoppingGame switches to the shopping screen, populating the world
// from the catalog on first entry.
func (s *Session) EnterShoppingGame() {
	s.initShoppingWorldIfNeeded()
	s.store.Dispatch(actions.SetScreen{Screen: types.ScreenShoppingGame})
}

// StartGame begins a shopping round and its countdown.
func (s *Session) StartGame() {
	s.initShoppingWorldIfNeeded()
	s.store.Dispatch(actions.StartShoppingGame{})
	s.timer.Start()
	s.Logger.Info("Shopping game started",
		zap.Int("time_left", s.store.State().ShoppingGame.TimeLeft))
}

// EndGame stops the countdown and marks the round completed.
func (s *Session) EndGame() {
	s.timer.Stop()
	s.store.Dispatch(actions.EndShoppingGame{})
}

// RestartGame rebuilds the shopping world from the catalog and starts a
// fresh round.
func (s *Session) RestartGame() {
	s.timer.Stop()
	s.store.Dispatch(actions.InitShoppingGame{
		Characters: s.catalog.Characters,
		Stores:     s.catalog.Stores,
		TimeLeft:   s.cfg.Game.ShoppingTime,
	})
	s.store.Dispatch(actions.StartShoppingGame{})
	s.timer.Start()
}

// MoveTo moves a character, clamping the target to the game area before
// dispatch so the sprite always stays fully inside it.
func (s *Session) MoveTo(characterID string, x, y int) error {
	sg := s.store.State().ShoppingGame
	found := false
	for _, c := range sg.Characters {
		if c.ID == characterID {
			found = true
			break
		}
	}
	if !found {
		return ErrCharacterNotFound
	}

	pos := types.Position{
		X: clamp(x, 0, s.cfg.Game.AreaWidth-s.cfg.Game.CharacterSize),
		Y: clamp(y, 0, s.cfg.Game.AreaHeight-s.cfg.Game.CharacterSize),
	}
	s.store.Dispatch(actions.MoveCharacter{CharacterID: characterID, Position: pos})
	return nil
}

// Purchase reports the outcome of buying one item in the shopping game.
type Purchase struct {
	Item      types.BudgetItem `json:"item"`
	Reward    int              `json:"reward"`
	MoneyLeft int              `json:"money_left"`
	Score     int              `json:"score"`
}

// Buy purchases an item from a store's menu for a character.
func (s *Session) Buy(characterID, storeID, itemID string) (Purchase, error) {
	if _, ok := s.catalog.StoreByID(storeID); !ok {
		return Purchase{}, ErrStoreNotFound
	}
	item, ok := s.catalog.StoreItem(storeID, itemID)
	if !ok {
		return Purchase{}, ErrItemNotFound
	}

	sg := s.store.State().ShoppingGame
	var buyer *types.GameCharacter
	for i := range sg.Characters {
		if sg.Characters[i].ID == characterID {
			buyer = &sg.Characters[i]
			break
		}
	}
	if buyer == nil {
		return Purchase{}, ErrCharacterNotFound
	}
	if buyer.Money < item.Price {
		return Purchase{}, ErrNotEnoughMoney
	}

	next := s.store.Dispatch(actions.BuyItem{
		CharacterID: characterID,
		StoreID:     storeID,
		Item:        item,
	})

	var after types.GameCharacter
	for _, c := range next.ShoppingGame.Characters {
		if c.ID == characterID {
			after = c
			break
		}
	}

	s.Logger.Info("Item purchased",
		zap.String("character_id", characterID),
		zap.String("store_id", storeID),
		zap.String("item_id", itemID),
		zap.Int("price", item.Price),
		zap.Int("money_left", after.Money))

	return Purchase{
		Item:      item,
		Reward:    state.CategoryReward(item.Category),
		MoneyLeft: after.Money,
		Score:     after.Score,
	}, nil
}

func (s *Session) initShoppingWorldIfNeeded() {
	if len(s.store.State().ShoppingGame.Characters) > 0 {
		return
	}
	s.store.Dispatch(actions.InitShoppingGame{
		Characters: s.catalog.Characters,
		Stores:     s.catalog.Stores,
		TimeLeft:   s.cfg.Game.ShoppingTime,
	})
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
