package service

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// ReceiptRepository хранилище чеков. Все выборки, кроме FindByID, ограничены владельцем.
type ReceiptRepository interface {
	Insert(ctx context.Context, receipt repoargs.CreateReceipt) (*domain.Receipt, error)
	FindByID(ctx context.Context, id int64) (*domain.Receipt, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Receipt, error)
	FindMatching(ctx context.Context, args repoargs.FindReceipts) ([]domain.Receipt, int64, error)
	Aggregate(ctx context.Context, ownerID int64) ([]repoargs.MethodAggregate, error)
}

// ReceiptCache кеш неизменяемых чеков. Ошибки кеша не должны влиять на результат, поэтому методы их не
// возвращают.
type ReceiptCache interface {
	Get(ctx context.Context, id int64) (*domain.Receipt, bool)
	Set(ctx context.Context, receipt *domain.Receipt)
}

type Clock interface {
	Now() time.Time
}
