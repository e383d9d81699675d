package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/money-smart-kids/internal/types"
)

func TestDecodeSetScreen(t *testing.T) {
	action, err := Decode([]byte(`{"type":"SetScreen","payload":{"screen":"quiz-game"}}`))

	require.NoError(t, err)
	require.IsType(t, SetScreen{}, action)
	assert.Equal(t, types.ScreenQuizGame, action.(SetScreen).Screen)
}

func TestDecodeAddToCart(t *testing.T) {
	action, err := Decode([]byte(`{
		"type": "AddToCart",
		"payload": {"item": {"id": "pizza", "name": "Pizza Slice", "price": 3, "category": "want"}}
	}`))

	require.NoError(t, err)
	require.IsType(t, AddToCart{}, action)
	item := action.(AddToCart).Item
	assert.Equal(t, "pizza", item.ID)
	assert.Equal(t, 3, item.Price)
	assert.Equal(t, types.CategoryWant, item.Category)
}

func TestDecodeUpdateProgressKeepsUnsetFieldsNil(t *testing.T) {
	action, err := Decode([]byte(`{"type":"UpdateProgress","payload":{"quiz_score":4}}`))

	require.NoError(t, err)
	up := action.(UpdateProgress)
	require.NotNil(t, up.QuizScore)
	assert.Equal(t, 4, *up.QuizScore)
	assert.Nil(t, up.LessonsCompleted)
	assert.Nil(t, up.CurrentSlide)
}

func TestDecodePayloadlessActions(t *testing.T) {
	cases := []struct {
		raw  string
		want Action
	}{
		{`{"type":"ResetCart"}`, ResetCart{}},
		{`{"type":"StartShoppingGame"}`, StartShoppingGame{}},
		{`{"type":"EndShoppingGame"}`, EndShoppingGame{}},
	}

	for _, tc := range cases {
		action, err := Decode([]byte(tc.raw))
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, action, tc.raw)
	}
}

func TestDecodeUnknownTypeYieldsUnknownAction(t *testing.T) {
	action, err := Decode([]byte(`{"type":"TeleportToMars","payload":{"speed":9}}`))

	require.NoError(t, err)
	require.IsType(t, Unknown{}, action)
	assert.Equal(t, "TeleportToMars", action.Name())
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte(`not json`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"payload":{}}`))
	assert.Error(t, err, "missing type tag")

	_, err = Decode([]byte(`{"type":"SetScreen","payload":"nope"}`))
	assert.Error(t, err, "malformed payload")
}
