package widget

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWidget_Defaults(t *testing.T) {
	w, err := NewWidget(IDClock, "Clock", 0, true, nil)
	require.NoError(t, err)

	assert.Equal(t, "clock", w.ID())
	assert.JSONEq(t, `{}`, string(w.Settings()))
	assert.True(t, w.Enabled())
}

func TestNewWidget_Invalid(t *testing.T) {
	_, err := NewWidget("", "x", 0, true, nil)
	assert.ErrorIs(t, err, ErrInvalidWidget)

	_, err = NewWidget("clock", "Clock", -1, true, nil)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = NewWidget("clock", "Clock", 0, true, json.RawMessage(`[1,2]`))
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestWidget_Apply(t *testing.T) {
	w, _ := NewWidget(IDNews, "News", 3, true, nil)

	off := false
	order := 1
	require.NoError(t, w.Apply(Patch{Enabled: &off, Order: &order, Settings: json.RawMessage(`{"limit":5}`)}))

	assert.False(t, w.Enabled())
	assert.Equal(t, 1, w.Order())
	assert.JSONEq(t, `{"limit":5}`, string(w.Settings()))
}

func TestWidget_ApplyLeavesNilFields(t *testing.T) {
	w, _ := NewWidget(IDNews, "News", 3, true, json.RawMessage(`{"a":1}`))
	require.NoError(t, w.Apply(Patch{}))

	assert.True(t, w.Enabled())
	assert.Equal(t, 3, w.Order())
	assert.JSONEq(t, `{"a":1}`, string(w.Settings()))
}

func TestWidget_ApplyRejectsNegativeOrder(t *testing.T) {
	w, _ := NewWidget(IDNews, "News", 3, true, nil)
	bad := -2
	assert.ErrorIs(t, w.Apply(Patch{Order: &bad}), ErrInvalidOrder)
	assert.Equal(t, 3, w.Order())
}
