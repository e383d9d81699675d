package types

// Screen identifies one of the top-level application views
type Screen string

const (
	ScreenAvatarSelection   Screen = "avatar-selection"
	ScreenLearningModule    Screen = "learning-module"
	ScreenQuizGame          Screen = "quiz-game"
	ScreenBudgetingGame     Screen = "budgeting-game"
	ScreenShoppingGame      Screen = "shopping-game"
	ScreenProgressDashboard Screen = "progress-dashboard"
)

// Valid reports whether s is one of the known screens
func (s Screen) Valid() bool {
	switch s {
	case ScreenAvatarSelection, ScreenLearningModule, ScreenQuizGame,
		ScreenBudgetingGame, ScreenShoppingGame, ScreenProgressDashboard:
		return true
	}
	return false
}

// Category classifies a budget item and drives shopping-game scoring
type Category string

const (
	CategoryNeed Category = "need"
	CategoryWant Category = "want"
	CategorySave Category = "save"
)

// Avatar represents a playable money hero
type Avatar struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Slide represents one page of the learning module
type Slide struct {
	ID      int      `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Image   string   `json:"image,omitempty"`
	Points  []string `json:"points"`
}

// QuizQuestion represents one question in the quiz bank
type QuizQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// BudgetItem represents a purchasable item in the budget and shopping games
type BudgetItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Category Category `json:"category"`
	Emoji    string   `json:"emoji"`
	Color    string   `json:"color"`
}

// Badge represents an achievement marker from the badge catalog
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Color       string `json:"color"`
	Earned      bool   `json:"earned"`
}

// Position is a pixel coordinate inside the shopping-game area
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Store represents a shop on the shopping-game map
type Store struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Emoji    string       `json:"emoji"`
	Color    string       `json:"color"`
	Position Position     `json:"position"`
	Items    []BudgetItem `json:"items"`
}

// GameCharacter represents a shopper moving around the shopping-game map
type GameCharacter struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Emoji     string       `json:"emoji"`
	Color     string       `json:"color"`
	Position  Position     `json:"position"`
	Money     int          `json:"money"`
	Inventory []BudgetItem `json:"inventory"`
	Score     int          `json:"score"`
}

// ShoppingGameState holds the shopping mini-game sub-state
type ShoppingGameState struct {
	Characters       []GameCharacter `json:"characters"`
	Stores           []Store         `json:"stores"`
	CurrentCharacter string          `json:"current_character"`
	GameStarted      bool            `json:"game_started"`
	GameCompleted    bool            `json:"game_completed"`
	TimeLeft         int             `json:"time_left"`
	Round            int             `json:"round"`
}

// Progress tracks cross-screen learning progress
type Progress struct {
	LessonsCompleted int      `json:"lessons_completed"`
	QuizScore        int      `json:"quiz_score"`
	BadgesEarned     []string `json:"badges_earned"`
	TotalTime        int      `json:"total_time"`
	CurrentSlide     int      `json:"current_slide"`
	CurrentQuestion  int      `json:"current_question"`
}

// CategoryTargets holds the suggested allocation per category, informational only
type CategoryTargets struct {
	Needs   int `json:"needs"`
	Wants   int `json:"wants"`
	Savings int `json:"savings"`
}

// Budget holds the budgeting mini-game sub-state
type Budget struct {
	Total      int             `json:"total"`
	Spent      int             `json:"spent"`
	Remaining  int             `json:"remaining"`
	Cart       []BudgetItem    `json:"cart"`
	Categories CategoryTargets `json:"categories"`
}

// AppState is the single source of truth for the whole application
type AppState struct {
	CurrentScreen  Screen            `json:"current_screen"`
	SelectedAvatar *Avatar           `json:"selected_avatar"`
	Progress       Progress          `json:"progress"`
	Budget         Budget            `json:"budget"`
	ShoppingGame   ShoppingGameState `json:"shopping_game"`
}
