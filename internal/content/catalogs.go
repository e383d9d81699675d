package content

import "github.com/user/money-smart-kids/internal/types"

// Static content catalogs. The core never mutates these; accessor
// functions hand out copies so callers cannot either.

var avatars = []types.Avatar{
	{ID: "alex", Name: "Alex", Description: "The Smart Saver", Color: "bg-coral"},
	{ID: "sam", Name: "Sam", Description: "The Budget Boss", Color: "bg-turquoise"},
	{ID: "riley", Name: "Riley", Description: "The Coin Collector", Color: "bg-sunny"},
	{ID: "taylor", Name: "Taylor", Description: "The Goal Getter", Color: "bg-mint"},
}

var learningSlides = []types.Slide{
	{
		ID:      1,
		Title:   "What is Money? 💰",
		Content: "Money is a tool that helps us buy things we need and want, save for future goals, and trade with others fairly.",
		Points: []string{
			"Buy things we need and want",
			"Save for future goals",
			"Trade with others fairly",
		},
	},
	{
		ID:      2,
		Title:   "Why Save Money? 🏦",
		Content: "Saving money helps us prepare for the future and reach our goals!",
		Points: []string{
			"Emergency fund for unexpected expenses",
			"Buy bigger things we want later",
			"Learn patience and planning",
		},
	},
	{
		ID:      3,
		Title:   "Needs vs Wants 🤔",
		Content: "Understanding the difference between needs and wants helps us make smart money choices.",
		Points: []string{
			"Needs: Food, shelter, clothing, school supplies",
			"Wants: Toys, games, candy, entertainment",
			"Always pay for needs first!",
		},
	},
	{
		ID:      4,
		Title:   "Making a Budget 📊",
		Content: "A budget helps us plan how to spend our money wisely.",
		Points: []string{
			"List all your income (allowance, gifts)",
			"Plan for needs, wants, and savings",
			"Track your spending",
		},
	},
}

var quizQuestions = []types.QuizQuestion{
	{
		ID:       1,
		Question: "What should you do with your money first?",
		Options: []string{
			"Spend it all immediately",
			"Save some for later",
			"Hide it under your bed",
			"Give it all away",
		},
		CorrectAnswer: 1,
		Explanation:   "Saving some money for later is always a smart choice!",
	},
	{
		ID:       2,
		Question: "Which of these is a NEED?",
		Options: []string{
			"Video games",
			"Candy",
			"School supplies",
			"Toys",
		},
		CorrectAnswer: 2,
		Explanation:   "School supplies are something you need for learning!",
	},
	{
		ID:       3,
		Question: "What is a budget?",
		Options: []string{
			"A type of wallet",
			"A plan for spending money",
			"A savings account",
			"A type of coin",
		},
		CorrectAnswer: 1,
		Explanation:   "A budget is a plan that helps you decide how to spend your money!",
	},
	{
		ID:       4,
		Question: "How much of your allowance should you try to save?",
		Options: []string{
			"Nothing",
			"All of it",
			"At least some of it",
			"Only the coins",
		},
		CorrectAnswer: 2,
		Explanation:   "Saving at least some of your allowance is a great habit!",
	},
	{
		ID:       5,
		Question: "What happens when you spend more than you have?",
		Options: []string{
			"You get more money",
			"Nothing happens",
			"You go into debt",
			"You become rich",
		},
		CorrectAnswer: 2,
		Explanation:   "Spending more than you have means you owe money - that's called debt!",
	},
}

var budgetItems = []types.BudgetItem{
	{ID: "school-supplies", Name: "School Supplies", Price: 8, Category: types.CategoryNeed, Emoji: "📚", Color: "bg-coral"},
	{ID: "video-game", Name: "Video Game", Price: 15, Category: types.CategoryWant, Emoji: "🎮", Color: "bg-bubblegum"},
	{ID: "pizza", Name: "Pizza Slice", Price: 3, Category: types.CategoryWant, Emoji: "🍕", Color: "bg-sunny"},
	{ID: "savings", Name: "Savings Account", Price: 5, Category: types.CategorySave, Emoji: "🏦", Color: "bg-mint"},
	{ID: "lunch", Name: "School Lunch", Price: 4, Category: types.CategoryNeed, Emoji: "🥙", Color: "bg-turquoise"},
	{ID: "toy", Name: "Action Figure", Price: 12, Category: types.CategoryWant, Emoji: "🦸", Color: "bg-bubblegum"},
}

var badges = []types.Badge{
	{ID: "first-quiz", Name: "First Quiz", Description: "Completed your first quiz!", Emoji: "🏆", Color: "bg-mint"},
	{ID: "money-master", Name: "Money Master", Description: "Learned about money basics!", Emoji: "💰", Color: "bg-turquoise"},
	{ID: "budget-pro", Name: "Budget Pro", Description: "Completed the budget challenge!", Emoji: "🎯", Color: "bg-sunny"},
	{ID: "super-saver", Name: "Super Saver", Description: "Saved money in the budget game!", Emoji: "🌟", Color: "bg-coral"},
	{ID: "all-complete", Name: "All Complete", Description: "Finished all learning modules!", Emoji: "🎊", Color: "bg-bubblegum"},
	{ID: "shopping-master", Name: "Shopping Master", Description: "Completed the shopping adventure!", Emoji: "🛍️", Color: "bg-bubblegum"},
	{ID: "expert-level", Name: "Expert Level", Description: "Achieved mastery in financial literacy!", Emoji: "🚀", Color: "bg-mint"},
}

// Badge ids earned by the game flows.
const (
	BadgeFirstQuiz      = "first-quiz"
	BadgeMoneyMaster    = "money-master"
	BadgeBudgetPro      = "budget-pro"
	BadgeSuperSaver     = "super-saver"
	BadgeAllComplete    = "all-complete"
	BadgeShoppingMaster = "shopping-master"
	BadgeExpertLevel    = "expert-level"
)

var shoppingCharacters = []types.GameCharacter{
	{
		ID:        "player",
		Name:      "Smart Shopper",
		Emoji:     "🧒",
		Color:     "bg-coral",
		Position:  types.Position{X: 50, Y: 200},
		Money:     50,
		Inventory: []types.BudgetItem{},
	},
}

var shoppingStores = []types.Store{
	{
		ID: "grocery", Name: "Grocery Store", Emoji: "🛒", Color: "bg-mint",
		Position: types.Position{X: 150, Y: 50},
		Items: []types.BudgetItem{
			{ID: "apple", Name: "Apple", Price: 2, Category: types.CategoryNeed, Emoji: "🍎", Color: "bg-coral"},
			{ID: "milk", Name: "Milk", Price: 3, Category: types.CategoryNeed, Emoji: "🥛", Color: "bg-turquoise"},
			{ID: "bread", Name: "Bread", Price: 4, Category: types.CategoryNeed, Emoji: "🍞", Color: "bg-sunny"},
			{ID: "banana", Name: "Banana", Price: 1, Category: types.CategoryNeed, Emoji: "🍌", Color: "bg-sunny"},
		},
	},
	{
		ID: "toy", Name: "Toy Store", Emoji: "🧸", Color: "bg-bubblegum",
		Position: types.Position{X: 350, Y: 50},
		Items: []types.BudgetItem{
			{ID: "teddy", Name: "Teddy Bear", Price: 15, Category: types.CategoryWant, Emoji: "🧸", Color: "bg-bubblegum"},
			{ID: "ball", Name: "Ball", Price: 8, Category: types.CategoryWant, Emoji: "⚽", Color: "bg-coral"},
			{ID: "puzzle", Name: "Puzzle", Price: 12, Category: types.CategoryWant, Emoji: "🧩", Color: "bg-mint"},
			{ID: "blocks", Name: "Building Blocks", Price: 20, Category: types.CategoryWant, Emoji: "🧱", Color: "bg-turquoise"},
		},
	},
	{
		ID: "electronics", Name: "Electronics Store", Emoji: "📱", Color: "bg-turquoise",
		Position: types.Position{X: 150, Y: 200},
		Items: []types.BudgetItem{
			{ID: "phone", Name: "Phone", Price: 25, Category: types.CategoryWant, Emoji: "📱", Color: "bg-turquoise"},
			{ID: "tablet", Name: "Tablet", Price: 30, Category: types.CategoryWant, Emoji: "📱", Color: "bg-coral"},
			{ID: "headphones", Name: "Headphones", Price: 12, Category: types.CategoryWant, Emoji: "🎧", Color: "bg-mint"},
		},
	},
	{
		ID: "bank", Name: "Bank", Emoji: "🏦", Color: "bg-sunny",
		Position: types.Position{X: 350, Y: 200},
		Items: []types.BudgetItem{
			{ID: "savings1", Name: "Save $5", Price: 5, Category: types.CategorySave, Emoji: "💰", Color: "bg-sunny"},
			{ID: "savings2", Name: "Save $10", Price: 10, Category: types.CategorySave, Emoji: "💰", Color: "bg-sunny"},
			{ID: "savings3", Name: "Save $15", Price: 15, Category: types.CategorySave, Emoji: "💰", Color: "bg-sunny"},
		},
	},
	{
		ID: "clothes", Name: "Clothes Shop", Emoji: "👕", Color: "bg-turquoise",
		Position: types.Position{X: 600, Y: 400},
		Items: []types.BudgetItem{
			{ID: "shirt", Name: "T-Shirt", Price: 12, Category: types.CategoryNeed, Emoji: "👕", Color: "bg-turquoise"},
			{ID: "hat", Name: "Hat", Price: 8, Category: types.CategoryWant, Emoji: "👒", Color: "bg-sunny"},
			{ID: "shoes", Name: "Shoes", Price: 20, Category: types.CategoryNeed, Emoji: "👟", Color: "bg-coral"},
		},
	},
}

// Avatars returns the avatar catalog.
func Avatars() []types.Avatar {
	return append([]types.Avatar(nil), avatars...)
}

// LearningSlides returns the lesson slide sequence.
func LearningSlides() []types.Slide {
	return append([]types.Slide(nil), learningSlides...)
}

// QuizQuestions returns the quiz question bank.
func QuizQuestions() []types.QuizQuestion {
	return append([]types.QuizQuestion(nil), quizQuestions...)
}

// BudgetItems returns the budgeting-game item catalog.
func BudgetItems() []types.BudgetItem {
	return append([]types.BudgetItem(nil), budgetItems...)
}

// Badges returns the badge catalog.
func Badges() []types.Badge {
	return append([]types.Badge(nil), badges...)
}

// ShoppingCharacters returns the shopping-game character roster.
func ShoppingCharacters() []types.GameCharacter {
	out := make([]types.GameCharacter, len(shoppingCharacters))
	for i, c := range shoppingCharacters {
		out[i] = c.Clone()
	}
	return out
}

// ShoppingStores returns the shopping-game store map.
func ShoppingStores() []types.Store {
	out := make([]types.Store, len(shoppingStores))
	for i, s := range shoppingStores {
		out[i] = s.Clone()
	}
	return out
}
