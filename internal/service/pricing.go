package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/pkg/money"
	"github.com/shopspring/decimal"
)

const maxItemNameLength = 255

type CartItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
}

// Cart нерассчитанная корзина: позиции и заявленная оплата.
type Cart struct {
	Items   []CartItem
	Payment domain.Payment
}

// PriceCart проверяет корзину и рассчитывает по ней чек.
//
// Алгоритм работы:
//  1. Проверяет позиции и оплату, при ошибке возвращает *domain.ValidationError.
//  2. Для каждой позиции считает LineTotal = round2(UnitPrice * Quantity).
//  3. Считает Total = round2(сумма LineTotal). Округление на уровне позиции и на уровне чека выполняется оба раза.
//  4. Если внесенной суммы не хватает, возвращает *domain.InsufficientPaymentError.
//  5. Считает Change = round2(Tendered - Total).
//
// Возвращает несохраненный чек без ID, владельца и даты создания. Корзина не изменяется.
func PriceCart(cart Cart) (*domain.Receipt, error) {
	if len(cart.Items) == 0 {
		return nil, domain.NewValidationError("products", "receipt must contain at least one item")
	}
	if err := validatePayment(cart.Payment); err != nil {
		return nil, err
	}

	items := make([]domain.Item, len(cart.Items))
	var sum = decimal.Zero
	for i, cartItem := range cart.Items {
		item, err := priceItem(i, cartItem)
		if err != nil {
			return nil, err
		}
		items[i] = item
		sum = sum.Add(item.LineTotal)
	}

	total := money.Round2(sum)
	if cart.Payment.Tendered.LessThan(total) {
		return nil, domain.NewInsufficientPaymentError(total, cart.Payment.Tendered)
	}

	return &domain.Receipt{
		Items:   items,
		Payment: cart.Payment,
		Total:   total,
		Change:  money.Round2(cart.Payment.Tendered.Sub(total)),
	}, nil
}

func priceItem(i int, item CartItem) (domain.Item, error) {
	field := func(name string) string {
		return fmt.Sprintf("products[%d].%s", i, name)
	}

	name := strings.TrimSpace(item.Name)
	switch {
	case name == "":
		return domain.Item{}, domain.NewValidationError(field("name"), "product name cannot be empty")
	case utf8.RuneCountInString(name) > maxItemNameLength:
		return domain.Item{}, domain.NewValidationError(
			field("name"),
			fmt.Sprintf("product name is longer than %d characters", maxItemNameLength),
		)
	}

	if err := validateAmount(field("price"), item.UnitPrice, money.MoneyPlaces); err != nil {
		return domain.Item{}, err
	}
	if err := validateAmount(field("quantity"), item.Quantity, money.QuantityPlaces); err != nil {
		return domain.Item{}, err
	}

	return domain.Item{
		Name:      name,
		UnitPrice: item.UnitPrice,
		Quantity:  item.Quantity,
		LineTotal: money.Round2(item.UnitPrice.Mul(item.Quantity)),
	}, nil
}

func validatePayment(p domain.Payment) error {
	if _, err := domain.ParsePaymentMethod(string(p.Method)); err != nil {
		return err //nolint:wrapcheck
	}
	return validateAmount("payment.amount", p.Tendered, money.MoneyPlaces)
}

// validateAmount проверяет, что значение положительное и не длиннее places знаков после запятой.
func validateAmount(field string, d decimal.Decimal, places int32) error {
	if !d.IsPositive() {
		return domain.NewValidationError(field, "must be positive")
	}
	if !money.HasMaxPlaces(d, places) {
		return domain.NewValidationError(field, fmt.Sprintf("must have at most %d decimal places", places))
	}
	return nil
}
