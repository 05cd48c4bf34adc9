package api

import (
	"context"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type ReceiptServicer interface {
	Create(ctx context.Context, ownerID int64, cart service.Cart) (*domain.Receipt, error)
	GetByID(ctx context.Context, id, ownerID int64) (*domain.Receipt, error)
	GetPublic(ctx context.Context, id int64) (*domain.Receipt, error)
	Query(ctx context.Context, ownerID int64, q service.ReceiptQuery) (*domain.ReceiptPage, error)
	Stats(ctx context.Context, ownerID int64) (*domain.StatsSummary, error)
}

// ReceiptEventRecorder учитывает бизнес-события создания чеков.
type ReceiptEventRecorder interface {
	IncrementReceiptsCreated(method domain.PaymentMethod)
	IncrementInsufficientPayments()
}
