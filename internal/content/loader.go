package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/money-smart-kids/internal/types"
)

// Catalog bundles every static content table the game consumes. The core
// treats a Catalog as immutable once built.
type Catalog struct {
	Avatars    []types.Avatar
	Slides     []types.Slide
	Questions  []types.QuizQuestion
	Items      []types.BudgetItem
	Badges     []types.Badge
	Characters []types.GameCharacter
	Stores     []types.Store
}

// Default returns a catalog populated with the built-in content.
func Default() *Catalog {
	return &Catalog{
		Avatars:    Avatars(),
		Slides:     LearningSlides(),
		Questions:  QuizQuestions(),
		Items:      BudgetItems(),
		Badges:     Badges(),
		Characters: ShoppingCharacters(),
		Stores:     ShoppingStores(),
	}
}

// AvatarByID looks an avatar up by id.
func (c *Catalog) AvatarByID(id string) (types.Avatar, bool) {
	for _, a := range c.Avatars {
		if a.ID == id {
			return a, true
		}
	}
	return types.Avatar{}, false
}

// ItemByID looks a budgeting-game item up by id.
func (c *Catalog) ItemByID(id string) (types.BudgetItem, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return types.BudgetItem{}, false
}

// StoreByID looks a shopping-game store up by id.
func (c *Catalog) StoreByID(id string) (types.Store, bool) {
	for _, s := range c.Stores {
		if s.ID == id {
			return s.Clone(), true
		}
	}
	return types.Store{}, false
}

// StoreItem looks an item up on a specific store's menu.
func (c *Catalog) StoreItem(storeID, itemID string) (types.BudgetItem, bool) {
	store, ok := c.StoreByID(storeID)
	if !ok {
		return types.BudgetItem{}, false
	}
	for _, it := range store.Items {
		if it.ID == itemID {
			return it, true
		}
	}
	return types.BudgetItem{}, false
}

// DataLoader builds a Catalog from JSON files in a base directory,
// falling back to the built-in content for any file that is absent.
type DataLoader struct {
	basePath string
}

// NewDataLoader creates a data loader rooted at basePath.
func NewDataLoader(basePath string) *DataLoader {
	return &DataLoader{basePath: basePath}
}

// Load assembles the catalog. Files that exist but fail to parse are a
// hard error: shipping half a content table would be worse than failing
// at startup.
func (dl *DataLoader) Load() (*Catalog, error) {
	catalog := Default()

	if err := dl.loadFile("avatars.json", &catalog.Avatars); err != nil {
		return nil, err
	}
	if err := dl.loadFile("slides.json", &catalog.Slides); err != nil {
		return nil, err
	}
	if err := dl.loadFile("questions.json", &catalog.Questions); err != nil {
		return nil, err
	}
	if err := dl.loadFile("budget_items.json", &catalog.Items); err != nil {
		return nil, err
	}
	if err := dl.loadFile("badges.json", &catalog.Badges); err != nil {
		return nil, err
	}
	if err := dl.loadFile("characters.json", &catalog.Characters); err != nil {
		return nil, err
	}
	if err := dl.loadFile("stores.json", &catalog.Stores); err != nil {
		return nil, err
	}

	return catalog, nil
}

func (dl *DataLoader) loadFile(name string, dst any) error {
	path := filepath.Join(dl.basePath, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
