package receipttext

import (
	"strings"
	"unicode/utf8"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/pkg/money"
)

const (
	DefaultLineWidth = 40

	title      = "RECEIPT"
	storeLabel = "Store #1"
	thanks     = "Thank you for your purchase!"

	timestampLayout = "02.01.2006 15:04"
)

// Formatter печатает чек в текстовом виде фиксированной ширины. Ширина считается в рунах.
type Formatter struct {
	lineWidth int
}

type Option func(*Formatter)

// WithLineWidth задает ширину строки. Неположительные значения игнорируются.
func WithLineWidth(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.lineWidth = n
		}
	}
}

func New(opts ...Option) *Formatter {
	f := &Formatter{lineWidth: DefaultLineWidth}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Formatter) LineWidth() int {
	return f.lineWidth
}

// Render возвращает текст чека. Строки разделены \n, завершающего перевода строки нет.
func (f *Formatter) Render(r *domain.Receipt) string {
	separator := strings.Repeat("-", f.lineWidth)

	lines := make([]string, 0, 10+2*len(r.Items))
	lines = append(lines,
		f.center(title),
		f.center(storeLabel),
		separator,
	)

	for _, item := range r.Items {
		lines = append(lines,
			money.Format(item.Quantity)+" x $"+money.Format(item.UnitPrice),
			f.nameLine(item.Name, "$"+money.Format(item.LineTotal)),
		)
	}

	lines = append(lines,
		separator,
		"TOTAL: $"+money.Format(r.Total),
		paymentLabel(r.Payment.Method)+": $"+money.Format(r.Payment.Tendered),
		"Change: $"+money.Format(r.Change),
		separator,
		f.center(r.CreatedAt.UTC().Format(timestampLayout)),
		f.center(thanks),
	)
	return strings.Join(lines, "\n")
}

func paymentLabel(m domain.PaymentMethod) string {
	if m == domain.PaymentCashless {
		return "Card"
	}
	return "Cash"
}

// nameLine выравнивает название по левому краю, сумму по правому. Название обрезается, только если вместе
// с суммой не помещается в строку; при точном совпадении пробелов между ними нет. Если не помещается даже
// сумма, строка состоит из одной суммы.
func (f *Formatter) nameLine(name, total string) string {
	totalLen := utf8.RuneCountInString(total)
	if totalLen >= f.lineWidth {
		return total
	}

	nameWidth := f.lineWidth - totalLen
	name = truncate(name, nameWidth)
	pad := f.lineWidth - utf8.RuneCountInString(name) - totalLen
	return name + strings.Repeat(" ", pad) + total
}

func (f *Formatter) center(s string) string {
	pad := f.lineWidth - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
