package cache

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSize = 1024
	DefaultTTL  = 10 * time.Minute
)

// LRU кеш чеков в памяти процесса. Используется, когда redis не настроен.
type LRU struct {
	items *expirable.LRU[int64, domain.Receipt]
}

func NewLRU(size int, ttl time.Duration) *LRU {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &LRU{items: expirable.NewLRU[int64, domain.Receipt](size, nil, ttl)}
}

func (l *LRU) Get(_ context.Context, id int64) (*domain.Receipt, bool) {
	receipt, ok := l.items.Get(id)
	if !ok {
		return nil, false
	}
	return &receipt, true
}

func (l *LRU) Set(_ context.Context, receipt *domain.Receipt) {
	if receipt == nil {
		return
	}
	l.items.Add(receipt.ID, *receipt)
}

func (l *LRU) Len() int {
	return l.items.Len()
}
