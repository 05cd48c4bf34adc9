package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateReceipt уже рассчитанный чек, готовый к сохранению. Позиции сохраняются в порядке среза.
type CreateReceipt struct {
	OwnerID   int64
	Items     []domain.Item
	Payment   domain.Payment
	Total     decimal.Decimal
	Change    decimal.Decimal
	CreatedAt time.Time
}

// ReceiptFilter фильтры выборки. Нулевые значения означают отсутствие фильтра.
type ReceiptFilter struct {
	DateFrom      *time.Time
	DateTo        *time.Time // DateTo включительно.
	DateToBefore  *time.Time // DateToBefore строго меньше, используется для date-only границы.
	MinTotal      *decimal.Decimal
	MaxTotal      *decimal.Decimal
	PaymentMethod *domain.PaymentMethod
	Search        string
}

type FindReceipts struct {
	OwnerID   int64
	Filter    ReceiptFilter
	SortBy    domain.SortField
	SortOrder domain.SortOrder
	Offset    int
	Limit     int
}

// MethodAggregate сырая строка агрегации по способу оплаты.
type MethodAggregate struct {
	Method domain.PaymentMethod
	Count  int64
	Sum    decimal.Decimal
	Max    decimal.Decimal
	Min    decimal.Decimal
}
