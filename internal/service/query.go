package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	dateOnlyLayout = "2006-01-02"
)

// ReceiptQuery параметры выборки чеков в том виде, в каком их передал клиент. Пустые строки и nil
// Page/Size означают значения по умолчанию.
type ReceiptQuery struct {
	Page          *int
	Size          *int
	DateFrom      string
	DateTo        string
	MinTotal      string
	MaxTotal      string
	PaymentMethod string
	Search        string
	SortBy        string
	SortOrder     string
}

// toFindArgs проверяет параметры и собирает из них аргументы репозитория. Любое нераспознанное значение
// возвращается как *domain.ValidationError, молча ничего не подменяется. Фильтр владельца задается
// отдельно и не зависит от параметров.
func (q ReceiptQuery) toFindArgs(ownerID int64) (repoargs.FindReceipts, error) {
	var args = repoargs.FindReceipts{
		OwnerID:   ownerID,
		SortBy:    domain.SortByCreatedAt,
		SortOrder: domain.SortDesc,
	}

	page, size, pageErr := q.paging()
	if pageErr != nil {
		return args, pageErr
	}
	args.Offset = (page - 1) * size
	args.Limit = size

	if q.SortBy != "" {
		sortBy, err := domain.ParseSortField(q.SortBy)
		if err != nil {
			return args, err //nolint:wrapcheck
		}
		args.SortBy = sortBy
	}
	if q.SortOrder != "" {
		sortOrder, err := domain.ParseSortOrder(q.SortOrder)
		if err != nil {
			return args, err //nolint:wrapcheck
		}
		args.SortOrder = sortOrder
	}

	filter, filterErr := q.filter()
	if filterErr != nil {
		return args, filterErr
	}
	args.Filter = filter
	return args, nil
}

func (q ReceiptQuery) paging() (int, int, error) {
	page, size := DefaultPage, DefaultPageSize
	if q.Page != nil {
		page = *q.Page
	}
	if q.Size != nil {
		size = *q.Size
	}
	if page < 1 {
		return 0, 0, domain.NewValidationError("page", "must be greater than or equal to 1")
	}
	if size < 1 || size > MaxPageSize {
		return 0, 0, domain.NewValidationError("size", fmt.Sprintf("must be between 1 and %d", MaxPageSize))
	}
	return page, size, nil
}

func (q ReceiptQuery) filter() (repoargs.ReceiptFilter, error) {
	var f repoargs.ReceiptFilter

	if q.DateFrom != "" {
		from, _, err := parseDateBound("date_from", q.DateFrom)
		if err != nil {
			return f, err
		}
		f.DateFrom = &from
	}
	if q.DateTo != "" {
		to, dateOnly, err := parseDateBound("date_to", q.DateTo)
		if err != nil {
			return f, err
		}
		if dateOnly {
			// дата без времени включает в себя весь день.
			nextDay := to.AddDate(0, 0, 1)
			f.DateToBefore = &nextDay
		} else {
			f.DateTo = &to
		}
	}
	if f.DateFrom != nil {
		switch {
		case f.DateTo != nil && f.DateFrom.After(*f.DateTo),
			f.DateToBefore != nil && !f.DateFrom.Before(*f.DateToBefore):
			return f, domain.NewValidationError("date_from", "must not be after date_to")
		}
	}

	minTotal, minErr := parseTotalBound("min_total", q.MinTotal)
	if minErr != nil {
		return f, minErr
	}
	maxTotal, maxErr := parseTotalBound("max_total", q.MaxTotal)
	if maxErr != nil {
		return f, maxErr
	}
	if minTotal != nil && maxTotal != nil && minTotal.GreaterThan(*maxTotal) {
		return f, domain.NewValidationError("min_total", "must not be greater than max_total")
	}
	f.MinTotal, f.MaxTotal = minTotal, maxTotal

	if q.PaymentMethod != "" {
		method, err := domain.ParsePaymentMethod(q.PaymentMethod)
		if err != nil {
			return f, err //nolint:wrapcheck
		}
		f.PaymentMethod = &method
	}

	f.Search = strings.TrimSpace(q.Search)
	return f, nil
}

// parseDateBound разбирает RFC3339 или дату вида 2006-01-02 (UTC). Второе значение - была ли передана
// только дата.
func parseDateBound(field, value string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, false, nil
	}
	if t, err := time.ParseInLocation(dateOnlyLayout, value, time.UTC); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, domain.NewValidationError(field, "expected RFC3339 timestamp or YYYY-MM-DD date")
}

func parseTotalBound(field, value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a decimal number")
	}
	if d.IsNegative() {
		return nil, domain.NewValidationError(field, "must not be negative")
	}
	return &d, nil
}

// newReceiptPage собирает страницу результата: TotalPages = ceil(total/size).
func newReceiptPage(receipts []domain.Receipt, total int64, args repoargs.FindReceipts) *domain.ReceiptPage {
	size := args.Limit
	page := args.Offset/size + 1
	totalPages := int((total + int64(size) - 1) / int64(size))

	if receipts == nil {
		receipts = []domain.Receipt{}
	}
	return &domain.ReceiptPage{
		Items:      receipts,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
