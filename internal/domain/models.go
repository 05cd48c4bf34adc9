package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	FullName  string
	Username  string
	Email     string
	Password  string
	IsActive  bool
}

// Item позиция чека. LineTotal всегда вычисляется из UnitPrice и Quantity движком расчета
// либо читается из хранилища, самостоятельно не задается.
type Item struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  decimal.Decimal `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type Payment struct {
	Method   PaymentMethod   `json:"method"`
	Tendered decimal.Decimal `json:"tendered"`
}

// Receipt чек. После сохранения не изменяется: ID, OwnerID и CreatedAt назначаются один раз,
// позиции загружаются вместе с чеком целиком.
type Receipt struct {
	ID        int64           `json:"id"`
	OwnerID   int64           `json:"owner_id"`
	Items     []Item          `json:"items"`
	Payment   Payment         `json:"payment"`
	Total     decimal.Decimal `json:"total"`
	Change    decimal.Decimal `json:"change"`
	CreatedAt time.Time       `json:"created_at"`
}

// ReceiptPage страница результата выборки чеков.
type ReceiptPage struct {
	Items      []Receipt
	Total      int64
	Page       int
	Size       int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

type MethodStats struct {
	Method PaymentMethod
	Count  int64
	Sum    decimal.Decimal
}

// StatsSummary агрегированная статистика по всем чекам владельца.
type StatsSummary struct {
	Count    int64
	Sum      decimal.Decimal
	Avg      decimal.Decimal
	Max      decimal.Decimal
	Min      decimal.Decimal
	ByMethod []MethodStats
}
