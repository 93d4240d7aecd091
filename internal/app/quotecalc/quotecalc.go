package quotecalc

import (
	"errors"
	"strconv"
)

// Пакет quotecalc - чистые расчёты конструктора коммерческих предложений.
// Без обращений к БД и HTTP, все функции детерминированы.

var (
	ErrIndexOutOfRange = errors.New("индекс позиции вне диапазона")
	ErrLastItem        = errors.New("в предложении должна остаться хотя бы одна позиция")
	ErrUnknownField    = errors.New("неизвестное поле позиции")
)

// Поле позиции, доступное для редактирования в конструкторе
type Field string

const (
	FieldDescription Field = "description"
	FieldQuantity    Field = "quantity"
	FieldUnitPrice   Field = "unit_price"
)

// Позиция предложения. Total всегда равен Quantity × UnitPrice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Итоги предложения
type Summary struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
}

// NewItem возвращает пустую позицию конструктора
func NewItem() LineItem {
	return LineItem{Description: "", Quantity: 1, UnitPrice: 0, Total: 0}
}

// AddItem добавляет пустую позицию в конец списка
func AddItem(items []LineItem) []LineItem {
	return append(items, NewItem())
}

// RemoveItem удаляет позицию по индексу. Последнюю позицию удалить нельзя.
func RemoveItem(items []LineItem, index int) ([]LineItem, error) {
	if index < 0 || index >= len(items) {
		return items, ErrIndexOutOfRange
	}
	if len(items) <= 1 {
		return items, ErrLastItem
	}

	result := make([]LineItem, 0, len(items)-1)
	result = append(result, items[:index]...)
	result = append(result, items[index+1:]...)
	return result, nil
}

// UpdateItem обновляет одно поле позиции и пересчитывает её Total.
// Отрицательные и нечисловые значения количества/цены приводятся к нулю -
// форма конструктора никогда не падает на кривом вводе.
func UpdateItem(items []LineItem, index int, field Field, value string) ([]LineItem, error) {
	if index < 0 || index >= len(items) {
		return items, ErrIndexOutOfRange
	}

	result := make([]LineItem, len(items))
	copy(result, items)
	item := &result[index]

	switch field {
	case FieldDescription:
		item.Description = value
	case FieldQuantity:
		item.Quantity = coerceInt(value)
	case FieldUnitPrice:
		item.UnitPrice = coerceFloat(value)
	default:
		return items, ErrUnknownField
	}

	item.Total = float64(item.Quantity) * item.UnitPrice
	return result, nil
}

// Totals считает итоги по списку позиций. Чистая функция, идемпотентна.
func Totals(items []LineItem, taxRatePercent float64) Summary {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Total
	}

	taxAmount := subtotal * taxRatePercent / 100
	return Summary{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal + taxAmount,
	}
}

// Normalize приводит позиции к инвариантам конструктора: пустые описания
// отбрасываются, количество/цена не бывают отрицательными, Total пересчитан.
func Normalize(items []LineItem) []LineItem {
	result := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.Description == "" {
			continue
		}
		if item.Quantity < 0 {
			item.Quantity = 0
		}
		if item.UnitPrice < 0 {
			item.UnitPrice = 0
		}
		item.Total = float64(item.Quantity) * item.UnitPrice
		result = append(result, item)
	}
	return result
}

func coerceInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func coerceFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
