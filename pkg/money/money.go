// Package money содержит правила округления и форматирования денежных величин.
package money

import "github.com/shopspring/decimal"

const (
	// MoneyPlaces количество знаков после запятой у денежных сумм.
	MoneyPlaces int32 = 2
	// QuantityPlaces количество знаков после запятой у количества товара.
	QuantityPlaces int32 = 3
)

// Round2 округляет сумму до копеек по правилу half-up (как кассовый аппарат), без банковского округления.
// decimal.Round округляет половину от нуля, что для положительных сумм совпадает с half-up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// HasMaxPlaces проверяет, что в d нет значащих цифр дальше places знаков после запятой.
// Незначащие нули допускаются: 1.500 имеет не более 2 знаков.
func HasMaxPlaces(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}

// Format возвращает сумму ровно с двумя знаками после запятой.
func Format(d decimal.Decimal) string {
	return d.StringFixed(MoneyPlaces)
}

// FormatQuantity возвращает количество ровно с тремя знаками после запятой.
func FormatQuantity(d decimal.Decimal) string {
	return d.StringFixed(QuantityPlaces)
}
