package domain

import "fmt"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCashless PaymentMethod = "cashless"
)

// ParsePaymentMethod единственная точка преобразования строки в PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCashless:
		return PaymentMethod(s), nil
	default:
		return "", NewValidationError("payment_type", fmt.Sprintf("unknown payment type `%s`", s))
	}
}

type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByTotal     SortField = "total"
	SortByTendered  SortField = "tendered"
)

func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case SortByCreatedAt, SortByTotal, SortByTendered:
		return SortField(s), nil
	default:
		return "", NewValidationError("sort_by", fmt.Sprintf("unknown sort field `%s`", s))
	}
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case SortAsc, SortDesc:
		return SortOrder(s), nil
	default:
		return "", NewValidationError("sort_order", fmt.Sprintf("unknown sort order `%s`", s))
	}
}
