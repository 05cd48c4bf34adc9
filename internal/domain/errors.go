package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrUserInactive      = errors.New("user is inactive")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")
)

// ValidationError некорректные входные данные: корзина, параметры выборки или пагинации.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on `%s`: %s", e.Field, e.Reason)
}

// InsufficientPaymentError внесенной суммы не хватает для оплаты чека.
type InsufficientPaymentError struct {
	Total    decimal.Decimal
	Tendered decimal.Decimal
}

func NewInsufficientPaymentError(total, tendered decimal.Decimal) error {
	return &InsufficientPaymentError{Total: total, Tendered: tendered}
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf(
		"payment amount is insufficient: tendered %s, total %s",
		e.Tendered.StringFixed(2),
		e.Total.StringFixed(2),
	)
}
