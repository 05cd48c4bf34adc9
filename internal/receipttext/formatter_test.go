package receipttext

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widgetReceipt(method domain.PaymentMethod) *domain.Receipt {
	return &domain.Receipt{
		ID:      1,
		OwnerID: 1,
		Items: []domain.Item{{
			Name:      "Widget",
			UnitPrice: decimal.RequireFromString("10.5"),
			Quantity:  decimal.RequireFromString("2"),
			LineTotal: decimal.RequireFromString("21"),
		}},
		Payment: domain.Payment{Method: method, Tendered: decimal.RequireFromString("50")},
		Total:   decimal.RequireFromString("21"),
		Change:  decimal.RequireFromString("29"),
		// +03:00 чтобы проверить, что время печатается в UTC.
		CreatedAt: time.Date(2024, 3, 15, 17, 30, 0, 0, time.FixedZone("MSK", 3*60*60)),
	}
}

func TestRender(t *testing.T) {
	sep := strings.Repeat("-", 40)
	want := strings.Join([]string{
		strings.Repeat(" ", 16) + "RECEIPT" + strings.Repeat(" ", 17),
		strings.Repeat(" ", 16) + "Store #1" + strings.Repeat(" ", 16),
		sep,
		"2.00 x $10.50",
		"Widget" + strings.Repeat(" ", 28) + "$21.00",
		sep,
		"TOTAL: $21.00",
		"Cash: $50.00",
		"Change: $29.00",
		sep,
		strings.Repeat(" ", 12) + "15.03.2024 14:30" + strings.Repeat(" ", 12),
		strings.Repeat(" ", 6) + "Thank you for your purchase!" + strings.Repeat(" ", 6),
	}, "\n")

	assert.Equal(t, want, New().Render(widgetReceipt(domain.PaymentCash)))
}

func TestRenderCardLabel(t *testing.T) {
	text := New().Render(widgetReceipt(domain.PaymentCashless))

	assert.Contains(t, text, "\nCard: $50.00\n")
	assert.NotContains(t, text, "Cash:")
}

func TestRenderIsPure(t *testing.T) {
	r := widgetReceipt(domain.PaymentCash)
	f := New(WithLineWidth(32))

	assert.Equal(t, f.Render(r), f.Render(r))
	assert.Equal(t, "Widget", r.Items[0].Name)
}

func TestRenderLineWidths(t *testing.T) {
	r := widgetReceipt(domain.PaymentCash)
	r.Items = append(r.Items, domain.Item{
		Name:      "Очень длинное название товара, которое не помещается в строку",
		UnitPrice: decimal.RequireFromString("1234.56"),
		Quantity:  decimal.RequireFromString("1.255"),
		LineTotal: decimal.RequireFromString("1549.37"),
	})

	for _, width := range []int{20, 33, 40, 64} {
		lines := strings.Split(New(WithLineWidth(width)).Render(r), "\n")
		require.Len(t, lines, 14)

		// Центрированные строки, разделители и строки с названием товара занимают ровно всю ширину.
		for _, i := range []int{0, 1, 2, 4, 6, 7, 11, 12, 13} {
			if i == 13 && width < utf8.RuneCountInString(thanks) {
				continue
			}
			assert.Equal(t, width, utf8.RuneCountInString(lines[i]), "width %d, line %d: %q", width, i, lines[i])
		}
		assert.True(t, strings.HasSuffix(lines[6], "$1549.37"), lines[6])
		assert.Equal(t, "1.26 x $1234.56", lines[5])
	}
}

func TestNameLineTruncation(t *testing.T) {
	f := New(WithLineWidth(20))

	assert.Equal(t, "Tea           $10.00", f.nameLine("Tea", "$10.00"))
	assert.Equal(t, "Chocolate bar $10.00", f.nameLine("Chocolate bar", "$10.00"))
	// ровно по ширине: название не обрезается, пробела нет.
	assert.Equal(t, "Chocolate bars$10.00", f.nameLine("Chocolate bars", "$10.00"))
	assert.Equal(t, "Chocolate bars$10.00", f.nameLine("Chocolate bars!", "$10.00"))
	assert.Equal(t, "Шоколадный бат$10.00", f.nameLine("Шоколадный батончик", "$10.00"))

	narrow := New(WithLineWidth(8))
	assert.Equal(t, "Te$10.00", narrow.nameLine("Tea", "$10.00"))
	assert.Equal(t, "T$10.00", New(WithLineWidth(7)).nameLine("Tea", "$10.00"))
	assert.Equal(t, "$10.00", New(WithLineWidth(6)).nameLine("Tea", "$10.00"))
	assert.Equal(t, "$1000.00", narrow.nameLine("Tea", "$1000.00"))
	assert.Equal(t, "$10000.00", narrow.nameLine("Tea", "$10000.00"))
}

func TestCenter(t *testing.T) {
	f := New(WithLineWidth(20))

	assert.Equal(t, "        TEST        ", f.center("TEST"))
	assert.Equal(t, "       ODD        ", New(WithLineWidth(18)).center("ODD"))
	assert.Equal(t, "  TEST   ", New(WithLineWidth(9)).center("TEST"))
	assert.Equal(t, "TOO LONG FOR LINE", New(WithLineWidth(5)).center("TOO LONG FOR LINE"))
}

func TestWithLineWidthIgnoresNonPositive(t *testing.T) {
	assert.Equal(t, DefaultLineWidth, New(WithLineWidth(0)).LineWidth())
	assert.Equal(t, DefaultLineWidth, New(WithLineWidth(-5)).LineWidth())
	assert.Equal(t, 60, New(WithLineWidth(60)).LineWidth())
}
