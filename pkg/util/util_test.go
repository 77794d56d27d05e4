package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("unexpected EOF")
	err := WrapErrorf(orig, ErrBadParamInput, "line %d", 3)

	assert.Equal(t, "line 3: unexpected EOF", err.Error())
	assert.True(t, errors.Is(err, orig))
	assert.Equal(t, ErrBadParamInput, ErrorCode(err))
	assert.Equal(t, ErrBadParamInput, ErrorCode(fmt.Errorf("outer: %w", err)))

	assert.Equal(t, "no cause", WrapErrorf(nil, ErrNotFound, "no cause").Error())
	assert.Equal(t, ErrInternalServerError, ErrorCode(errors.New("plain")))
}

func TestRoundHalfUp(t *testing.T) {
	testCases := []struct {
		in   float64
		want int
	}{
		{in: 2.5, want: 3},
		{in: 2.49, want: 2},
		{in: 0, want: 0},
		{in: 7.0, want: 7},
	}
	for _, tt := range testCases {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, RoundHalfUp(tt.in))
		})
	}
}

type sample struct {
	Alpha float64 `validate:"gte=0,lte=1"`
	Count int     `validate:"gte=1"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(sample{Alpha: 0.5, Count: 1}))

	err := ValidateStruct(sample{Alpha: 2, Count: 0})
	require.Error(t, err)
	assert.Equal(t, ErrBadParamInput, ErrorCode(err))
	assert.Contains(t, err.Error(), "Alpha must be 1 or less")
	assert.Contains(t, err.Error(), "Count must be 1 or greater")
}

func TestAssertPanic(t *testing.T) {
	assert.NotPanics(t, func() { AssertPanic(true, "fine") })
	assert.PanicsWithValue(t, "boom", func() { AssertPanic(false, "boom") })
}
