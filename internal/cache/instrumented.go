package cache

import (
	"context"

	"github.com/fsdevblog/groph-receipts/internal/domain"
)

type Store interface {
	Get(ctx context.Context, id int64) (*domain.Receipt, bool)
	Set(ctx context.Context, receipt *domain.Receipt)
}

type LookupObserver interface {
	ObserveCacheLookup(backend string, hit bool)
}

// Instrumented учитывает попадания и промахи кеша next.
type Instrumented struct {
	next     Store
	backend  string
	observer LookupObserver
}

func Instrument(next Store, backend string, observer LookupObserver) *Instrumented {
	return &Instrumented{next: next, backend: backend, observer: observer}
}

func (i *Instrumented) Get(ctx context.Context, id int64) (*domain.Receipt, bool) {
	receipt, ok := i.next.Get(ctx, id)
	i.observer.ObserveCacheLookup(i.backend, ok)
	return receipt, ok
}

func (i *Instrumented) Set(ctx context.Context, receipt *domain.Receipt) {
	i.next.Set(ctx, receipt)
}
