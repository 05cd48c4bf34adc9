package pgrepo

import (
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/repository/repoargs"
	"github.com/jackc/pgx/v5"
)

const receiptColumns = `r.id, r.user_id, r.payment_type, r.payment_amount, r.total, r.rest, r.created_at`

var sortColumns = map[domain.SortField]string{
	domain.SortByCreatedAt: "r.created_at",
	domain.SortByTotal:     "r.total",
	domain.SortByTendered:  "r.payment_amount",
}

var sortDirections = map[domain.SortOrder]string{
	domain.SortAsc:  "ASC",
	domain.SortDesc: "DESC",
}

// receiptQuery собирает запрос выборки чеков из фильтров. Значения передаются только через именованные
// параметры, в текст запроса попадают лишь имена колонок и направления сортировки из белых списков.
// Условие владельца всегда первое и не зависит от фильтров.
type receiptQuery struct {
	where   []string
	orderBy string
	args    pgx.NamedArgs
}

func newReceiptQuery(find repoargs.FindReceipts) (*receiptQuery, error) {
	column, ok := sortColumns[find.SortBy]
	if !ok {
		return nil, fmt.Errorf("unsupported sort field `%s`", find.SortBy)
	}
	direction, ok := sortDirections[find.SortOrder]
	if !ok {
		return nil, fmt.Errorf("unsupported sort order `%s`", find.SortOrder)
	}

	q := &receiptQuery{
		where:   []string{"r.user_id = @owner_id"},
		orderBy: fmt.Sprintf("%s %s, r.id %s", column, direction, direction),
		args: pgx.NamedArgs{
			"owner_id": find.OwnerID,
			"limit":    find.Limit,
			"offset":   find.Offset,
		},
	}

	f := find.Filter
	if f.DateFrom != nil {
		q.add("r.created_at >= @date_from", "date_from", *f.DateFrom)
	}
	if f.DateTo != nil {
		q.add("r.created_at <= @date_to", "date_to", *f.DateTo)
	}
	if f.DateToBefore != nil {
		q.add("r.created_at < @date_to_before", "date_to_before", *f.DateToBefore)
	}
	if f.MinTotal != nil {
		q.add("r.total >= @min_total", "min_total", *f.MinTotal)
	}
	if f.MaxTotal != nil {
		q.add("r.total <= @max_total", "max_total", *f.MaxTotal)
	}
	if f.PaymentMethod != nil {
		q.add("r.payment_type = @payment_type", "payment_type", string(*f.PaymentMethod))
	}
	if f.Search != "" {
		q.add(
			`EXISTS (SELECT 1 FROM receipt_items ri WHERE ri.receipt_id = r.id AND ri.name ILIKE @search ESCAPE '\')`,
			"search",
			"%"+escapeLike(f.Search)+"%",
		)
	}
	return q, nil
}

func (q *receiptQuery) add(cond, name string, value any) {
	q.where = append(q.where, cond)
	q.args[name] = value
}

func (q *receiptQuery) whereSQL() string {
	return strings.Join(q.where, " AND ")
}

func (q *receiptQuery) countSQL() string {
	return `SELECT COUNT(*) FROM receipts r WHERE ` + q.whereSQL()
}

func (q *receiptQuery) selectSQL() string {
	return `SELECT ` + receiptColumns + ` FROM receipts r WHERE ` + q.whereSQL() +
		` ORDER BY ` + q.orderBy + ` LIMIT @limit OFFSET @offset`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы LIKE, чтобы строка поиска совпадала буквально.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
