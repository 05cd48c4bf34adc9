package pgrepo

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/repository/repoargs"
	"github.com/fsdevblog/groph-receipts/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type receiptRow struct {
	ID            int64           `db:"id"`
	UserID        int64           `db:"user_id"`
	PaymentType   string          `db:"payment_type"`
	PaymentAmount decimal.Decimal `db:"payment_amount"`
	Total         decimal.Decimal `db:"total"`
	Rest          decimal.Decimal `db:"rest"`
	CreatedAt     time.Time       `db:"created_at"`
}

type itemRow struct {
	ReceiptID int64           `db:"receipt_id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Quantity  decimal.Decimal `db:"quantity"`
	Total     decimal.Decimal `db:"total"`
}

type ReceiptRepository struct {
	conn uow.DBTX
}

func NewReceiptRepository(conn uow.DBTX) *ReceiptRepository {
	return &ReceiptRepository{conn: conn}
}

// Insert сохраняет чек и его позиции. Позиции вставляются одним батчем с сохранением порядка.
// Атомарность обеспечивает вызывающий: метод нужно вызывать внутри транзакции uow.
func (r *ReceiptRepository) Insert(ctx context.Context, receipt repoargs.CreateReceipt) (*domain.Receipt, error) {
	var (
		id        int64
		createdAt time.Time
	)
	err := r.conn.QueryRow(ctx,
		`INSERT INTO receipts (user_id, payment_type, payment_amount, total, rest, created_at)
		VALUES (@user_id, @payment_type, @payment_amount, @total, @rest, @created_at)
		RETURNING id, created_at`,
		pgx.NamedArgs{
			"user_id":        receipt.OwnerID,
			"payment_type":   string(receipt.Payment.Method),
			"payment_amount": receipt.Payment.Tendered,
			"total":          receipt.Total,
			"rest":           receipt.Change,
			"created_at":     receipt.CreatedAt,
		},
	).Scan(&id, &createdAt)
	if err != nil {
		return nil, convertErr(err, "creating receipt for user %d", receipt.OwnerID)
	}

	batch := new(pgx.Batch)
	for i, item := range receipt.Items {
		batch.Queue(
			`INSERT INTO receipt_items (receipt_id, position, name, price, quantity, total)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id, i, item.Name, item.UnitPrice, item.Quantity, item.LineTotal,
		)
	}
	br := r.conn.SendBatch(ctx, batch)
	for range receipt.Items {
		if _, execErr := br.Exec(); execErr != nil {
			_ = br.Close()
			return nil, convertErr(execErr, "creating items of receipt %d", id)
		}
	}
	if closeErr := br.Close(); closeErr != nil {
		return nil, convertErr(closeErr, "creating items of receipt %d", id)
	}

	return &domain.Receipt{
		ID:        id,
		OwnerID:   receipt.OwnerID,
		Items:     slices.Clone(receipt.Items),
		Payment:   receipt.Payment,
		Total:     receipt.Total,
		Change:    receipt.Change,
		CreatedAt: createdAt.UTC(),
	}, nil
}

// FindByID ищет чек по идентификатору без учета владельца. Если чек не найден - domain.ErrRecordNotFound.
func (r *ReceiptRepository) FindByID(ctx context.Context, id int64) (*domain.Receipt, error) {
	rows, _ := r.conn.Query(ctx, `SELECT `+receiptColumns+` FROM receipts r WHERE r.id = $1`, id)
	return r.findOne(ctx, rows, "finding receipt %d", id)
}

// FindByIDAndOwner ищет чек владельца. Чужой чек неотличим от несуществующего: domain.ErrRecordNotFound.
func (r *ReceiptRepository) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Receipt, error) {
	rows, _ := r.conn.Query(ctx,
		`SELECT `+receiptColumns+` FROM receipts r WHERE r.id = $1 AND r.user_id = $2`,
		id, ownerID,
	)
	return r.findOne(ctx, rows, "finding receipt %d of user %d", id, ownerID)
}

func (r *ReceiptRepository) findOne(
	ctx context.Context,
	rows pgx.Rows,
	format string,
	formatArgs ...any,
) (*domain.Receipt, error) {
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[receiptRow])
	if err != nil {
		return nil, convertErr(err, format, formatArgs...)
	}
	receipts, err := r.attachItems(ctx, []receiptRow{row})
	if err != nil {
		return nil, err
	}
	return &receipts[0], nil
}

// FindMatching возвращает страницу чеков владельца, подходящих под фильтры, и общее количество подходящих
// чеков без учета пагинации.
func (r *ReceiptRepository) FindMatching(
	ctx context.Context,
	args repoargs.FindReceipts,
) ([]domain.Receipt, int64, error) {
	q, qErr := newReceiptQuery(args)
	if qErr != nil {
		return nil, 0, fmt.Errorf("[repository/finding receipts] %w: %s", domain.ErrUnknown, qErr.Error())
	}

	var total int64
	if err := r.conn.QueryRow(ctx, q.countSQL(), q.args).Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting receipts of user %d", args.OwnerID)
	}
	if total == 0 {
		return []domain.Receipt{}, 0, nil
	}

	rows, _ := r.conn.Query(ctx, q.selectSQL(), q.args)
	dbReceipts, err := pgx.CollectRows(rows, pgx.RowToStructByName[receiptRow])
	if err != nil {
		return nil, 0, convertErr(err, "finding receipts of user %d", args.OwnerID)
	}

	receipts, err := r.attachItems(ctx, dbReceipts)
	if err != nil {
		return nil, 0, err
	}
	return receipts, total, nil
}

// Aggregate считает количество, сумму, максимум и минимум итогов чеков владельца по способам оплаты.
func (r *ReceiptRepository) Aggregate(ctx context.Context, ownerID int64) ([]repoargs.MethodAggregate, error) {
	rows, _ := r.conn.Query(ctx,
		`SELECT payment_type, COUNT(*), COALESCE(SUM(total), 0), COALESCE(MAX(total), 0), COALESCE(MIN(total), 0)
		FROM receipts
		WHERE user_id = $1
		GROUP BY payment_type
		ORDER BY payment_type`,
		ownerID,
	)

	result, err := pgx.CollectRows(rows, func(pgRow pgx.CollectableRow) (repoargs.MethodAggregate, error) {
		var (
			paymentType string
			row         repoargs.MethodAggregate
		)
		if scanErr := pgRow.Scan(&paymentType, &row.Count, &row.Sum, &row.Max, &row.Min); scanErr != nil {
			return row, scanErr //nolint:wrapcheck
		}
		method, parseErr := domain.ParsePaymentMethod(paymentType)
		if parseErr != nil {
			return row, parseErr //nolint:wrapcheck
		}
		row.Method = method
		return row, nil
	})
	if err != nil {
		return nil, convertErr(err, "aggregating receipts of user %d", ownerID)
	}
	return result, nil
}

// attachItems загружает позиции всех чеков одним запросом и раскладывает их по чекам в порядке position.
func (r *ReceiptRepository) attachItems(ctx context.Context, dbReceipts []receiptRow) ([]domain.Receipt, error) {
	ids := make([]int64, len(dbReceipts))
	for i, row := range dbReceipts {
		ids[i] = row.ID
	}

	rows, _ := r.conn.Query(ctx,
		`SELECT receipt_id, name, price, quantity, total
		FROM receipt_items
		WHERE receipt_id = ANY($1)
		ORDER BY receipt_id, position`,
		ids,
	)
	dbItems, err := pgx.CollectRows(rows, pgx.RowToStructByName[itemRow])
	if err != nil {
		return nil, convertErr(err, "loading receipt items")
	}

	itemsByReceipt := make(map[int64][]domain.Item, len(dbReceipts))
	for _, item := range dbItems {
		itemsByReceipt[item.ReceiptID] = append(itemsByReceipt[item.ReceiptID], domain.Item{
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
			LineTotal: item.Total,
		})
	}

	receipts := make([]domain.Receipt, len(dbReceipts))
	for i, row := range dbReceipts {
		receipt, convErr := convertReceiptModel(row, itemsByReceipt[row.ID])
		if convErr != nil {
			return nil, convertErr(convErr, "converting receipt %d", row.ID)
		}
		receipts[i] = receipt
	}
	return receipts, nil
}

func convertReceiptModel(row receiptRow, items []domain.Item) (domain.Receipt, error) {
	method, err := domain.ParsePaymentMethod(row.PaymentType)
	if err != nil {
		return domain.Receipt{}, err //nolint:wrapcheck
	}
	return domain.Receipt{
		ID:      row.ID,
		OwnerID: row.UserID,
		Items:   items,
		Payment: domain.Payment{
			Method:   method,
			Tendered: row.PaymentAmount,
		},
		Total:     row.Total,
		Change:    row.Rest,
		CreatedAt: row.CreatedAt.UTC(),
	}, nil
}
