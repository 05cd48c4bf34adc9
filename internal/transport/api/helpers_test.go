package api

import (
	"os"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/logger"
	"github.com/fsdevblog/groph-receipts/internal/metrics"
	"github.com/fsdevblog/groph-receipts/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-receipts/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testJWTSecret = []byte("super secret key")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sampleReceipt чек на одну позицию: 10.50 x 2, оплата наличными 50.00.
func sampleReceipt(id, ownerID int64) *domain.Receipt {
	return &domain.Receipt{
		ID:      id,
		OwnerID: ownerID,
		Items: []domain.Item{
			{Name: "Widget", UnitPrice: dec("10.5"), Quantity: dec("2"), LineTotal: dec("21")},
		},
		Payment:   domain.Payment{Method: domain.PaymentCash, Tendered: dec("50")},
		Total:     dec("21"),
		Change:    dec("29"),
		CreatedAt: time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC),
	}
}

const sampleReceiptJSON = `{
	"id": 1,
	"products": [{"name": "Widget", "price": "10.50", "quantity": "2.000", "total": "21.00"}],
	"payment": {"type": "cash", "amount": "50.00"},
	"total": "21.00",
	"rest": "29.00",
	"created_at": "2026-10-15T12:30:00Z"
}`

type testRouterArgs struct {
	users     *mocks.MockUserServicer
	receipts  *mocks.MockReceiptServicer
	metrics   *metrics.Metrics
	rateLimit middlewares.RateLimiterConfig
}

func newTestRouter(args testRouterArgs) *gin.Engine {
	r, err := New(RouterArgs{
		Logger:          logger.New(os.Stdout),
		UserService:     args.users,
		ReceiptService:  args.receipts,
		Metrics:         args.metrics,
		JWTSecretKey:    testJWTSecret,
		PublicRateLimit: args.rateLimit,
	})
	if err != nil {
		panic(err)
	}
	return r
}
