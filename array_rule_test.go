package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTypedArrayRule(t *testing.T) {
	t.Run("NilInnerPanics", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrNilRule, func() {
			NewTypedArrayRule(nil)
		})
	})

	t.Run("AcceptsAnyRule", func(t *testing.T) {
		assert.NotNil(t, NewTypedArrayRule(NewStringRule()))
		assert.NotNil(t, NewTypedArrayRule(NewTypedArrayRule(NewIntegerRule())))
	})
}

func TestTypedArrayRule(t *testing.T) {
	t.Run("AllElementsValid", func(t *testing.T) {
		rec := &recorder{}
		rule := NewTypedArrayRule(NewStringRule())

		assert.Equal(t, []any{"foo", "bar"}, rule.Sanitize([]any{"foo", "bar"}, rec.report))
		assert.False(t, rec.called)
	})

	t.Run("ElementsCoerced", func(t *testing.T) {
		rec := &recorder{}
		rule := NewTypedArrayRule(NewIntegerRule())

		assert.Equal(t, []any{1, 2, 3}, rule.Sanitize([]any{"1", float64(2), 3}, rec.report))
		assert.False(t, rec.called)
	})

	t.Run("EmptyArray", func(t *testing.T) {
		rec := &recorder{}
		rule := NewTypedArrayRule(NewStringRule())

		assert.Equal(t, []any{}, rule.Sanitize([]any{}, rec.report))
		assert.False(t, rec.called)
	})

	t.Run("NotAnArray", func(t *testing.T) {
		rec := &recorder{}
		rule := NewTypedArrayRule(NewStringRule())

		assert.Equal(t, []any{}, rule.Sanitize("foo", rec.report))
		assert.Equal(t, 1, rec.calls)
		assert.Equal(t, InvalidValue, rec.code)
		assert.Empty(t, rec.indexes)
	})

	t.Run("InvalidElementDiscardsWholeArray", func(t *testing.T) {
		rec := &recorder{}
		rule := NewTypedArrayRule(NewStringRule())

		assert.Equal(t, []any{}, rule.Sanitize([]any{"foo", "bar", nil}, rec.report))
		assert.Equal(t, 1, rec.calls)
		assert.Equal(t, InvalidStructureValue, rec.code)
		assert.Equal(t, []int{2}, rec.indexes)
	})

	t.Run("CollectsAllInvalidIndexes", func(t *testing.T) {
		rec := &recorder{}
		rule := NewTypedArrayRule(NewIntegerRule())

		assert.Equal(t, []any{}, rule.Sanitize([]any{nil, 2, "x", 4, 5.5}, rec.report))
		assert.Equal(t, 1, rec.calls)
		assert.Equal(t, InvalidStructureValue, rec.code)
		assert.Equal(t, []int{0, 2, 4}, rec.indexes)
	})
}
