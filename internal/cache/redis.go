package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const receiptKeyPrefix = "receipt:"

// Redis кеш чеков в redis. Чеки хранятся в JSON с ограниченным временем жизни. Ошибки redis только логируются,
// для вызывающего они выглядят как промах кеша.
type Redis struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *logrus.Logger
}

func NewRedis(client redis.Cmdable, ttl time.Duration, l *logrus.Logger) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl, logger: l}
}

func receiptKey(id int64) string {
	return receiptKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *Redis) Get(ctx context.Context, id int64) (*domain.Receipt, bool) {
	data, err := r.client.Get(ctx, receiptKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.WithError(err).WithField("receipt_id", id).Warn("redis cache get failed")
		}
		return nil, false
	}

	var receipt domain.Receipt
	if unmarshalErr := json.Unmarshal(data, &receipt); unmarshalErr != nil {
		r.logger.WithError(unmarshalErr).WithField("receipt_id", id).Warn("broken receipt in redis cache")
		return nil, false
	}
	return &receipt, true
}

func (r *Redis) Set(ctx context.Context, receipt *domain.Receipt) {
	if receipt == nil {
		return
	}
	data, err := json.Marshal(receipt)
	if err != nil {
		r.logger.WithError(err).WithField("receipt_id", receipt.ID).Error("marshal receipt for redis cache")
		return
	}
	if setErr := r.client.Set(ctx, receiptKey(receipt.ID), data, r.ttl).Err(); setErr != nil {
		r.logger.WithError(setErr).WithField("receipt_id", receipt.ID).Warn("redis cache set failed")
	}
}
