package worldpay_cg_hosted

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDataRejectsEveryUnknownKey(t *testing.T) {
	_, err := NewOptionalData([]string{"a", "b"}, map[string]any{
		"a":    1,
		"zeta": 2,
		"beta": 3,
	})

	var unsupported *UnsupportedParameterError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, []string{"beta", "zeta"}, unsupported.Keys)
}

func TestOptionalDataSetGet(t *testing.T) {
	d, err := NewOptionalData([]string{"a", "b", "c"}, map[string]any{"c": "seed"})
	require.NoError(t, err)

	assert.True(t, d.HasProperties())
	assert.False(t, d.IsSet("a"))

	require.NoError(t, d.Set("a", 0))
	assert.True(t, d.IsSet("a"), "zero value still counts as set")

	v, err := d.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	require.NoError(t, d.Set("a", 42))
	v, err = d.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	assert.Equal(t, []string{"a", "c"}, d.Keys())
}

func TestOptionalDataSetUnknownKey(t *testing.T) {
	d, err := NewOptionalData([]string{"a"}, nil)
	require.NoError(t, err)

	err = d.Set("typo", true)
	var unsupported *UnsupportedParameterError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, []string{"typo"}, unsupported.Keys)
	assert.False(t, d.IsSet("typo"))
	assert.False(t, d.HasProperties())
}

func TestOptionalDataGetBeforeSet(t *testing.T) {
	d, err := NewOptionalData([]string{"a"}, nil)
	require.NoError(t, err)

	_, err = d.Get("a")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotSet)

	var unsupported *UnsupportedParameterError
	assert.False(t, errors.As(err, &unsupported))
}
