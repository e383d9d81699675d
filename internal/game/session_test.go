package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/money-smart-kids/config"
	"github.com/user/money-smart-kids/internal/content"
	"github.com/user/money-smart-kids/internal/state"
	"github.com/user/money-smart-kids/internal/types"
	"go.uber.org/zap"
)

func newTestSession(t *testing.T) (*Session, *state.Store) {
	t.Helper()

	store := state.NewStore(state.InitialState(), nil, zap.NewNop())
	session := NewSession(store, content.Default(), config.DefaultConfig())
	t.Cleanup(session.Timer().Stop)
	return session, store
}

func TestChooseAvatar(t *testing.T) {
	session, store := newTestSession(t)

	require.NoError(t, session.ChooseAvatar("alex"))

	avatar := store.State().SelectedAvatar
	require.NotNil(t, avatar)
	assert.Equal(t, "Alex", avatar.Name)

	assert.ErrorIs(t, session.ChooseAvatar("nobody"), ErrAvatarNotFound)
}

func TestStartJourneyRequiresAvatar(t *testing.T) {
	session, store := newTestSession(t)

	assert.ErrorIs(t, session.StartJourney(), ErrNoAvatarSelected)

	require.NoError(t, session.ChooseAvatar("sam"))
	require.NoError(t, session.StartJourney())
	assert.Equal(t, types.ScreenLearningModule, store.State().CurrentScreen)
}

func TestNavigate(t *testing.T) {
	session, store := newTestSession(t)

	require.NoError(t, session.Navigate(types.ScreenProgressDashboard))
	assert.Equal(t, types.ScreenProgressDashboard, store.State().CurrentScreen)

	assert.ErrorIs(t, session.Navigate(types.Screen("secret-level")), ErrInvalidScreen)
}

func TestNavigateAwayStopsShoppingTimer(t *testing.T) {
	session, _ := newTestSession(t)

	session.EnterShoppingGame()
	session.StartGame()
	require.True(t, session.Timer().Running())

	require.NoError(t, session.Navigate(types.ScreenProgressDashboard))
	assert.False(t, session.Timer().Running())
}

func TestLearningModuleFlow(t *testing.T) {
	session, store := newTestSession(t)
	require.NoError(t, session.ChooseAvatar("riley"))
	require.NoError(t, session.StartJourney())

	slideCount := len(content.LearningSlides())

	// Step forward through every slide but the last
	for i := 1; i < slideCount; i++ {
		session.NextSlide()
		assert.Equal(t, i, store.State().Progress.CurrentSlide)
	}

	// Back and forward again
	session.PrevSlide()
	assert.Equal(t, slideCount-2, store.State().Progress.CurrentSlide)
	session.NextSlide()

	// Finishing the last slide completes the module
	session.NextSlide()
	st := store.State()
	assert.Equal(t, slideCount, st.Progress.LessonsCompleted)
	assert.Contains(t, st.Progress.BadgesEarned, content.BadgeMoneyMaster)
	assert.Equal(t, types.ScreenQuizGame, st.CurrentScreen)
}

func TestPrevSlideStopsAtFirst(t *testing.T) {
	session, store := newTestSession(t)

	session.PrevSlide()
	assert.Equal(t, 0, store.State().Progress.CurrentSlide)
}

func TestQuizFlowAllCorrect(t *testing.T) {
	session, store := newTestSession(t)
	questions := content.QuizQuestions()

	for i, q := range questions {
		answer, err := session.AnswerQuestion(q.CorrectAnswer)
		require.NoError(t, err)
		assert.True(t, answer.Correct)
		assert.Equal(t, i+1, answer.Score)
		assert.Equal(t, q.Explanation, answer.Explanation)
		assert.Equal(t, i == len(questions)-1, answer.Completed)
	}

	st := store.State()
	assert.Equal(t, len(questions), st.Progress.QuizScore)
	assert.Contains(t, st.Progress.BadgesEarned, content.BadgeFirstQuiz)
	assert.Equal(t, types.ScreenBudgetingGame, st.CurrentScreen)
}

func TestQuizWrongAnswerScoresNothing(t *testing.T) {
	session, _ := newTestSession(t)
	question := content.QuizQuestions()[0]

	wrong := (question.CorrectAnswer + 1) % len(question.Options)
	answer, err := session.AnswerQuestion(wrong)

	require.NoError(t, err)
	assert.False(t, answer.Correct)
	assert.Equal(t, 0, answer.Score)
}

func TestQuizRejectsInvalidOption(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.AnswerQuestion(-1)
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	_, err = session.AnswerQuestion(99)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestResetQuiz(t *testing.T) {
	session, store := newTestSession(t)
	question := content.QuizQuestions()[0]

	_, err := session.AnswerQuestion(question.CorrectAnswer)
	require.NoError(t, err)

	session.ResetQuiz()
	assert.Equal(t, 0, store.State().Progress.CurrentQuestion)

	// The running score starts over too
	answer, err := session.AnswerQuestion(question.CorrectAnswer)
	require.NoError(t, err)
	assert.Equal(t, 1, answer.Score)
}

func TestBudgetCartFlow(t *testing.T) {
	session, store := newTestSession(t)

	require.NoError(t, session.AddItem("pizza"))
	require.NoError(t, session.AddItem("school-supplies"))

	budget := store.State().Budget
	assert.Equal(t, 11, budget.Spent)
	assert.Equal(t, 9, budget.Remaining)

	assert.ErrorIs(t, session.AddItem("pizza"), ErrItemAlreadyInCart)
	assert.ErrorIs(t, session.AddItem("video-game"), ErrOverBudget, "15 does not fit into the remaining 9")
	assert.ErrorIs(t, session.AddItem("gold-bar"), ErrItemNotFound)

	session.RemoveItem("pizza")
	assert.Equal(t, 8, store.State().Budget.Spent)

	session.ResetBudget()
	budget = store.State().Budget
	assert.Empty(t, budget.Cart)
	assert.Equal(t, budget.Total, budget.Remaining)
}

func TestReviewBudgetAwardsBadges(t *testing.T) {
	session, store := newTestSession(t)
	require.NoError(t, session.AddItem("school-supplies"))
	require.NoError(t, session.AddItem("savings"))
	require.NoError(t, session.AddItem("pizza"))

	review := session.ReviewBudget()

	assert.Equal(t, 16, review.Spent)
	assert.Equal(t, 4, review.Remaining)
	assert.Equal(t, 8, review.NeedsTotal)
	assert.Equal(t, 3, review.WantsTotal)
	assert.Equal(t, 5, review.SavingsTotal)
	assert.True(t, review.SavedMoney)

	st := store.State()
	assert.Contains(t, st.Progress.BadgesEarned, content.BadgeSuperSaver)
	assert.Contains(t, st.Progress.BadgesEarned, content.BadgeBudgetPro)
	assert.Equal(t, types.ScreenShoppingGame, st.CurrentScreen)
}

func TestReviewBudgetWithoutSavings(t *testing.T) {
	session, store := newTestSession(t)
	require.NoError(t, session.AddItem("pizza"))

	review := session.ReviewBudget()

	assert.False(t, review.SavedMoney)
	st := store.State()
	assert.NotContains(t, st.Progress.BadgesEarned, content.BadgeSuperSaver)
	assert.Contains(t, st.Progress.BadgesEarned, content.BadgeBudgetPro)
}

func TestEnterShoppingGamePopulatesWorldOnce(t *testing.T) {
	session, store := newTestSession(t)

	session.EnterShoppingGame()

	st := store.State()
	assert.Equal(t, types.ScreenShoppingGame, st.CurrentScreen)
	require.NotEmpty(t, st.ShoppingGame.Characters)
	require.NotEmpty(t, st.ShoppingGame.Stores)
	assert.Equal(t, st.ShoppingGame.Characters[0].ID, st.ShoppingGame.CurrentCharacter)

	// Re-entering keeps the existing world
	require.NoError(t, session.MoveTo("player", 300, 300))
	session.EnterShoppingGame()
	assert.Equal(t, types.Position{X: 300, Y: 300}, store.State().ShoppingGame.Characters[0].Position)
}

func TestStartAndEndGame(t *testing.T) {
	session, store := newTestSession(t)

	session.StartGame()
	st := store.State()
	assert.True(t, st.ShoppingGame.GameStarted)
	assert.True(t, session.Timer().Running())

	session.EndGame()
	st = store.State()
	assert.False(t, st.ShoppingGame.GameStarted)
	assert.True(t, st.ShoppingGame.GameCompleted)
	assert.False(t, session.Timer().Running())
}

func TestRestartGameRebuildsWorld(t *testing.T) {
	session, store := newTestSession(t)

	session.StartGame()
	_, err := session.Buy("player", "grocery", "apple")
	require.NoError(t, err)
	session.EndGame()

	session.RestartGame()

	st := store.State()
	assert.True(t, st.ShoppingGame.GameStarted)
	assert.False(t, st.ShoppingGame.GameCompleted)
	ch := st.ShoppingGame.Characters[0]
	assert.Equal(t, 50, ch.Money, "a restart resets the purse")
	assert.Empty(t, ch.Inventory)
	session.EndGame()
}

func TestMoveToClampsToGameArea(t *testing.T) {
	session, store := newTestSession(t)
	session.EnterShoppingGame()
	cfg := config.DefaultConfig()

	require.NoError(t, session.MoveTo("player", 10000, -50))

	pos := store.State().ShoppingGame.Characters[0].Position
	assert.Equal(t, cfg.Game.AreaWidth-cfg.Game.CharacterSize, pos.X)
	assert.Equal(t, 0, pos.Y)

	assert.ErrorIs(t, session.MoveTo("ghost", 1, 1), ErrCharacterNotFound)
}

func TestBuy(t *testing.T) {
	session, _ := newTestSession(t)
	session.EnterShoppingGame()

	purchase, err := session.Buy("player", "grocery", "apple")

	require.NoError(t, err)
	assert.Equal(t, "apple", purchase.Item.ID)
	assert.Equal(t, 15, purchase.Reward)
	assert.Equal(t, 48, purchase.MoneyLeft)
	assert.Equal(t, 15, purchase.Score)
}

func TestBuyErrors(t *testing.T) {
	session, _ := newTestSession(t)
	session.EnterShoppingGame()

	_, err := session.Buy("player", "mall", "apple")
	assert.ErrorIs(t, err, ErrStoreNotFound)

	_, err = session.Buy("player", "grocery", "tablet")
	assert.ErrorIs(t, err, ErrItemNotFound, "the item must be on that store's menu")

	_, err = session.Buy("ghost", "grocery", "apple")
	assert.ErrorIs(t, err, ErrCharacterNotFound)

	// Drain the purse, then try to overspend
	_, err = session.Buy("player", "electronics", "tablet")
	require.NoError(t, err)
	_, err = session.Buy("player", "toy", "blocks")
	require.NoError(t, err)

	_, err = session.Buy("player", "grocery", "apple")
	assert.ErrorIs(t, err, ErrNotEnoughMoney)
}
