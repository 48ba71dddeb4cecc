package attr

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestListInsertOrder(t *testing.T) {
	l := &List{}
	require.NoError(t, l.Insert(NewWeight(WeightBold).WithRange(5, 10)))
	require.NoError(t, l.Insert(NewStyle(StyleItalic).WithRange(0, 3)))
	require.NoError(t, l.Insert(NewSize(12*64).WithRange(5, 8)))
	require.NoError(t, l.InsertBefore(NewFamily("Serif").WithRange(5, 6)))

	got := l.Attributes()
	require.Len(t, got, 4)
	assert.Equal(t, KindStyle, got[0].Kind)
	assert.Equal(t, KindFamily, got[1].Kind)
	assert.Equal(t, KindWeight, got[2].Kind)
	assert.Equal(t, KindSize, got[3].Kind)
}

func TestListInsertInvalid(t *testing.T) {
	tests := []struct {
		name string
		a    Attribute
		want error
	}{
		{"reversed range", NewWeight(WeightBold).WithRange(5, 2), ErrInvalidRange},
		{"negative start", NewWeight(WeightBold).WithRange(-1, 2), ErrInvalidRange},
		{"wrong value type", Attribute{Start: 0, End: 1, Kind: KindWeight, Value: "bold"}, ErrInvalidValue},
		{"unknown kind", Attribute{Start: 0, End: 1, Kind: kindCount, Value: 1}, ErrUnknownKind},
		{"neutral override", NewDirection(0), ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &List{}
			err := l.Insert(tt.a)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, 0, l.Len())
		})
	}
}

func TestListChange(t *testing.T) {
	t.Run("merges equal values", func(t *testing.T) {
		l, err := NewList(NewWeight(WeightBold).WithRange(0, 5))
		require.NoError(t, err)
		require.NoError(t, l.Change(NewWeight(WeightBold).WithRange(5, 9)))
		got := l.Attributes()
		require.Len(t, got, 1)
		assert.Equal(t, 0, got[0].Start)
		assert.Equal(t, 9, got[0].End)
	})
	t.Run("cuts different values", func(t *testing.T) {
		l, err := NewList(NewWeight(WeightBold).WithRange(0, 10))
		require.NoError(t, err)
		require.NoError(t, l.Change(NewWeight(WeightLight).WithRange(3, 6)))
		got := l.Attributes()
		require.Len(t, got, 3)
		assert.Equal(t, [2]int{0, 3}, [2]int{got[0].Start, got[0].End})
		assert.Equal(t, WeightBold, got[0].Value)
		assert.Equal(t, [2]int{3, 6}, [2]int{got[1].Start, got[1].End})
		assert.Equal(t, WeightLight, got[1].Value)
		assert.Equal(t, [2]int{6, 10}, [2]int{got[2].Start, got[2].End})
		assert.Equal(t, WeightBold, got[2].Value)
	})
	t.Run("leaves other kinds", func(t *testing.T) {
		l, err := NewList(NewStyle(StyleItalic).WithRange(0, 10))
		require.NoError(t, err)
		require.NoError(t, l.Change(NewWeight(WeightBold).WithRange(2, 4)))
		assert.Equal(t, 2, l.Len())
	})
}

func TestListFilter(t *testing.T) {
	l, err := NewList(
		NewWeight(WeightBold).WithRange(0, 4),
		NewForeground(color.Black).WithRange(0, 4),
		NewSize(10*64).WithRange(2, 6),
	)
	require.NoError(t, err)

	fonts := l.Filter(func(a Attribute) bool { return a.Kind.AffectsFont() })
	require.NotNil(t, fonts)
	assert.Equal(t, 2, fonts.Len())
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, KindForeground, l.Attributes()[0].Kind)

	assert.Nil(t, l.Filter(func(a Attribute) bool { return a.Kind == KindShape }))
}

func TestListUpdate(t *testing.T) {
	l, err := NewList(
		NewWeight(WeightBold).WithRange(0, 4),
		NewStyle(StyleItalic).WithRange(6, 8),
		NewSize(10*64).WithRange(10, 20),
		NewFamily("Sans"),
	)
	require.NoError(t, err)

	// Replace bytes [5, 9) with two bytes.
	l.Update(5, 4, 2)
	got := l.Attributes()
	require.Len(t, got, 3)
	assert.Equal(t, [2]int{0, 4}, [2]int{got[0].Start, got[0].End})
	assert.Equal(t, [2]int{0, EndOfText}, [2]int{got[1].Start, got[1].End})
	assert.Equal(t, [2]int{8, 18}, [2]int{got[2].Start, got[2].End})
}

func TestListEqual(t *testing.T) {
	a, err := NewList(NewWeight(WeightBold).WithRange(0, 4), NewStyle(StyleItalic).WithRange(0, 4))
	require.NoError(t, err)
	b, err := NewList(NewStyle(StyleItalic).WithRange(0, 4), NewWeight(WeightBold).WithRange(0, 4))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c := a.Copy()
	require.NoError(t, c.Insert(NewSize(fixed.I(3))))
	assert.False(t, a.Equal(c))
	assert.Equal(t, 2, a.Len())
}
