package service

import (
	"fmt"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/service/psswd"
	"github.com/fsdevblog/groph-receipts/pkg/uow"
)

type AppServices struct {
	UserService    *UserService
	ReceiptService *ReceiptService
}

type FactoryArgs struct {
	UOW            uow.UOW
	Cache          ReceiptCache
	JWTSecret      []byte
	JWTTokenExpire time.Duration
}

func Factory(args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(args.UOW, args.JWTSecret, psswd.PasswordHash(""))
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}
	userService.WithTokenExpire(args.JWTTokenExpire)

	receiptService, receiptServiceErr := NewReceiptService(args.UOW, args.Cache)
	if receiptServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", receiptServiceErr.Error())
	}

	return &AppServices{
		UserService:    userService,
		ReceiptService: receiptService,
	}, nil
}
