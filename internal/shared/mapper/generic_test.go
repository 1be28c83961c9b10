package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	assert.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))
	assert.Empty(t, MapSlice([]int{}, strconv.Itoa))
}

func TestMapSliceWithError(t *testing.T) {
	got, err := MapSliceWithError([]string{"3", "4"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, got)

	_, err = MapSliceWithError([]string{"3", "x"}, strconv.Atoi)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}
