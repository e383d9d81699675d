package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataLoaderFallsBackToBuiltIns(t *testing.T) {
	catalog, err := NewDataLoader(t.TempDir()).Load()

	require.NoError(t, err)
	assert.Equal(t, Default(), catalog)
}

func TestDataLoaderOverridesFromFiles(t *testing.T) {
	dir := t.TempDir()
	override := `[{"id":"zoe","name":"Zoe","description":"The Penny Wizard","color":"bg-mint"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "avatars.json"), []byte(override), 0644))

	catalog, err := NewDataLoader(dir).Load()

	require.NoError(t, err)
	require.Len(t, catalog.Avatars, 1)
	assert.Equal(t, "zoe", catalog.Avatars[0].ID)

	// Other tables keep their built-in content
	assert.Equal(t, Default().Slides, catalog.Slides)
	assert.Equal(t, Default().Stores, catalog.Stores)
}

func TestDataLoaderRejectsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "badges.json"), []byte("[{broken"), 0644))

	_, err := NewDataLoader(dir).Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "badges.json")
}

func TestCatalogLookups(t *testing.T) {
	catalog := Default()

	avatar, ok := catalog.AvatarByID("alex")
	require.True(t, ok)
	assert.Equal(t, "Alex", avatar.Name)

	_, ok = catalog.AvatarByID("nobody")
	assert.False(t, ok)

	item, ok := catalog.ItemByID("savings")
	require.True(t, ok)
	assert.Equal(t, 5, item.Price)

	store, ok := catalog.StoreByID("bank")
	require.True(t, ok)
	assert.Equal(t, "Bank", store.Name)

	menuItem, ok := catalog.StoreItem("bank", "savings2")
	require.True(t, ok)
	assert.Equal(t, 10, menuItem.Price)

	_, ok = catalog.StoreItem("bank", "apple")
	assert.False(t, ok, "items are scoped to their store's menu")
}
