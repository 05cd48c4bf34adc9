package pgrepo

import (
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/repository/repoargs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReceiptQueryOwnerOnly(t *testing.T) {
	q, err := newReceiptQuery(repoargs.FindReceipts{
		OwnerID:   3,
		SortBy:    domain.SortByCreatedAt,
		SortOrder: domain.SortDesc,
		Offset:    20,
		Limit:     10,
	})
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM receipts r WHERE r.user_id = @owner_id", q.countSQL())
	assert.Equal(t,
		"SELECT "+receiptColumns+" FROM receipts r WHERE r.user_id = @owner_id "+
			"ORDER BY r.created_at DESC, r.id DESC LIMIT @limit OFFSET @offset",
		q.selectSQL(),
	)
	assert.Equal(t, int64(3), q.args["owner_id"])
	assert.Equal(t, 10, q.args["limit"])
	assert.Equal(t, 20, q.args["offset"])
}

func TestNewReceiptQueryAllFilters(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	minTotal := decimal.RequireFromString("10")
	maxTotal := decimal.RequireFromString("20")
	method := domain.PaymentCashless

	q, err := newReceiptQuery(repoargs.FindReceipts{
		OwnerID: 1,
		Filter: repoargs.ReceiptFilter{
			DateFrom:      &from,
			DateToBefore:  &to,
			MinTotal:      &minTotal,
			MaxTotal:      &maxTotal,
			PaymentMethod: &method,
			Search:        "50%_off",
		},
		SortBy:    domain.SortByTendered,
		SortOrder: domain.SortAsc,
		Limit:     10,
	})
	require.NoError(t, err)

	sql := q.selectSQL()
	assert.True(t, strings.HasPrefix(q.whereSQL(), "r.user_id = @owner_id AND "))
	assert.Contains(t, sql, "r.created_at >= @date_from")
	assert.Contains(t, sql, "r.created_at < @date_to_before")
	assert.NotContains(t, sql, "@date_to ")
	assert.Contains(t, sql, "r.total >= @min_total")
	assert.Contains(t, sql, "r.total <= @max_total")
	assert.Contains(t, sql, "r.payment_type = @payment_type")
	assert.Contains(t, sql, "ri.name ILIKE @search")
	assert.Contains(t, sql, "ORDER BY r.payment_amount ASC, r.id ASC")

	assert.Equal(t, "cashless", q.args["payment_type"])
	assert.Equal(t, `%50\%\_off%`, q.args["search"])
	assert.Equal(t, from, q.args["date_from"])
	assert.Equal(t, minTotal, q.args["min_total"])

	// значения в текст запроса не попадают.
	assert.NotContains(t, sql, "50%")
	assert.NotContains(t, sql, "cashless")
}

func TestNewReceiptQueryRejectsUnknownSort(t *testing.T) {
	_, err := newReceiptQuery(repoargs.FindReceipts{SortBy: "name; DROP TABLE receipts", SortOrder: domain.SortAsc})
	require.Error(t, err)

	_, err = newReceiptQuery(repoargs.FindReceipts{SortBy: domain.SortByTotal, SortOrder: "sideways"})
	require.Error(t, err)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "Coffee", escapeLike("Coffee"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\temp`, escapeLike(`c:\temp`))
}
