package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/repository/repoargs"
	"github.com/fsdevblog/groph-receipts/pkg/uow"
)

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type ReceiptService struct {
	uow         uow.UOW
	receiptRepo ReceiptRepository
	cache       ReceiptCache
	clock       Clock
}

func NewReceiptService(u uow.UOW, cache ReceiptCache) (*ReceiptService, error) {
	receiptRepo, err := uow.GetRepositoryAs[ReceiptRepository](u, uow.RepositoryName(repoargs.ReceiptRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &ReceiptService{
		uow:         u,
		receiptRepo: receiptRepo,
		cache:       cache,
		clock:       systemClock{},
	}, nil
}

// WithClock подменяет источник времени, которым проставляется дата создания чека.
func (r *ReceiptService) WithClock(clock Clock) *ReceiptService {
	r.clock = clock
	return r
}

// Create рассчитывает чек по корзине и сохраняет его от имени ownerID.
//
// Расчет выполняется целиком до обращения к хранилищу: ошибки *domain.ValidationError и
// *domain.InsufficientPaymentError возвращаются без побочных эффектов. Чек и его позиции сохраняются в одной
// транзакции.
func (r *ReceiptService) Create(ctx context.Context, ownerID int64, cart Cart) (*domain.Receipt, error) {
	priced, priceErr := PriceCart(cart)
	if priceErr != nil {
		return nil, priceErr
	}

	var created *domain.Receipt
	txErr := r.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[ReceiptRepository](tx, uow.RepositoryName(repoargs.ReceiptRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var insertErr error
		created, insertErr = repo.Insert(c, repoargs.CreateReceipt{
			OwnerID:   ownerID,
			Items:     priced.Items,
			Payment:   priced.Payment,
			Total:     priced.Total,
			Change:    priced.Change,
			CreatedAt: r.clock.Now(),
		})
		return insertErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating receipt: %w", txErr)
	}

	r.cache.Set(ctx, created)
	return created, nil
}

// GetByID возвращает чек владельца. Чужой или несуществующий чек - domain.ErrRecordNotFound.
func (r *ReceiptService) GetByID(ctx context.Context, id, ownerID int64) (*domain.Receipt, error) {
	if cached, ok := r.cache.Get(ctx, id); ok {
		if cached.OwnerID != ownerID {
			return nil, fmt.Errorf("getting receipt %d: %w", id, domain.ErrRecordNotFound)
		}
		return cached, nil
	}

	receipt, err := r.receiptRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("getting receipt %d: %w", id, err)
	}
	r.cache.Set(ctx, receipt)
	return receipt, nil
}

// GetPublic возвращает чек по идентификатору без проверки владельца, для публичного просмотра.
func (r *ReceiptService) GetPublic(ctx context.Context, id int64) (*domain.Receipt, error) {
	if cached, ok := r.cache.Get(ctx, id); ok {
		return cached, nil
	}

	receipt, err := r.receiptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting public receipt %d: %w", id, err)
	}
	r.cache.Set(ctx, receipt)
	return receipt, nil
}

// Query возвращает страницу чеков владельца, отфильтрованных и отсортированных согласно q.
func (r *ReceiptService) Query(ctx context.Context, ownerID int64, q ReceiptQuery) (*domain.ReceiptPage, error) {
	args, argsErr := q.toFindArgs(ownerID)
	if argsErr != nil {
		return nil, argsErr
	}

	receipts, total, err := r.receiptRepo.FindMatching(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("querying receipts: %w", err)
	}
	return newReceiptPage(receipts, total, args), nil
}

// Stats возвращает статистику по всем чекам владельца. Фильтры выборки к статистике не применяются.
func (r *ReceiptService) Stats(ctx context.Context, ownerID int64) (*domain.StatsSummary, error) {
	rows, err := r.receiptRepo.Aggregate(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("aggregating receipts: %w", err)
	}
	return foldStats(rows), nil
}
