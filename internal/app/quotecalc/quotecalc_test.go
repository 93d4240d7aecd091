package quotecalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotals(t *testing.T) {
	items := []LineItem{
		{Description: "8x NVIDIA H100 SXM", Quantity: 2, UnitPrice: 1000, Total: 2000},
		{Description: "InfiniBand подключение", Quantity: 1, UnitPrice: 500, Total: 500},
	}

	summary := Totals(items, 10)

	assert.Equal(t, 2500.0, summary.Subtotal)
	assert.Equal(t, 250.0, summary.TaxAmount)
	assert.Equal(t, 2750.0, summary.Total)
}

func TestTotalsEmpty(t *testing.T) {
	summary := Totals(nil, 20)

	assert.Equal(t, 0.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.TaxAmount)
	assert.Equal(t, 0.0, summary.Total)
}

func TestTotalsIdempotent(t *testing.T) {
	items := []LineItem{
		{Description: "H200 аренда", Quantity: 3, UnitPrice: 333.33, Total: 999.99},
	}

	first := Totals(items, 13)
	second := Totals(items, 13)

	assert.Equal(t, first, second)
}

func TestUpdateItemQuantity(t *testing.T) {
	items := []LineItem{{Description: "H100", Quantity: 1, UnitPrice: 1000, Total: 1000}}

	updated, err := UpdateItem(items, 0, FieldQuantity, "4")
	require.NoError(t, err)

	assert.Equal(t, 4, updated[0].Quantity)
	assert.Equal(t, 4000.0, updated[0].Total)
	// исходный слайс не меняется
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateItemCoercion(t *testing.T) {
	items := []LineItem{{Description: "H100", Quantity: 2, UnitPrice: 1000, Total: 2000}}

	tests := []struct {
		name  string
		field Field
		value string
	}{
		{"нечисловое количество", FieldQuantity, "abc"},
		{"отрицательное количество", FieldQuantity, "-5"},
		{"нечисловая цена", FieldUnitPrice, "дорого"},
		{"отрицательная цена", FieldUnitPrice, "-100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := UpdateItem(items, 0, tt.field, tt.value)
			require.NoError(t, err)
			assert.Equal(t, 0.0, updated[0].Total)
		})
	}
}

func TestUpdateItemDescriptionKeepsTotal(t *testing.T) {
	items := []LineItem{{Description: "H100", Quantity: 2, UnitPrice: 1000, Total: 2000}}

	updated, err := UpdateItem(items, 0, FieldDescription, "8x NVIDIA H100 SXM")
	require.NoError(t, err)

	assert.Equal(t, "8x NVIDIA H100 SXM", updated[0].Description)
	assert.Equal(t, 2000.0, updated[0].Total)
}

func TestUpdateItemOutOfRange(t *testing.T) {
	items := []LineItem{NewItem()}

	_, err := UpdateItem(items, 5, FieldQuantity, "1")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = UpdateItem(items, -1, FieldQuantity, "1")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestUpdateItemUnknownField(t *testing.T) {
	items := []LineItem{NewItem()}

	_, err := UpdateItem(items, 0, Field("discount"), "10")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestAddItem(t *testing.T) {
	items := []LineItem{{Description: "H100", Quantity: 1, UnitPrice: 1000, Total: 1000}}

	items = AddItem(items)

	require.Len(t, items, 2)
	assert.Equal(t, NewItem(), items[1])
}

func TestRemoveItem(t *testing.T) {
	items := []LineItem{
		{Description: "первая", Quantity: 1, UnitPrice: 100, Total: 100},
		{Description: "вторая", Quantity: 1, UnitPrice: 200, Total: 200},
		{Description: "третья", Quantity: 1, UnitPrice: 300, Total: 300},
	}

	result, err := RemoveItem(items, 1)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "первая", result[0].Description)
	assert.Equal(t, "третья", result[1].Description)
}

func TestRemoveLastItemRefused(t *testing.T) {
	items := []LineItem{NewItem()}

	result, err := RemoveItem(items, 0)

	assert.ErrorIs(t, err, ErrLastItem)
	assert.Len(t, result, 1)
}

func TestRemoveItemOutOfRange(t *testing.T) {
	items := []LineItem{NewItem(), NewItem()}

	_, err := RemoveItem(items, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNormalize(t *testing.T) {
	items := []LineItem{
		{Description: "H100", Quantity: 2, UnitPrice: 1000, Total: 999}, // Total пересчитается
		{Description: "", Quantity: 1, UnitPrice: 500},                  // пустая строка отбрасывается
		{Description: "скидка", Quantity: -1, UnitPrice: -200},          // отрицательные в ноль
	}

	result := Normalize(items)

	require.Len(t, result, 2)
	assert.Equal(t, 2000.0, result[0].Total)
	assert.Equal(t, 0, result[1].Quantity)
	assert.Equal(t, 0.0, result[1].UnitPrice)
	assert.Equal(t, 0.0, result[1].Total)
}
