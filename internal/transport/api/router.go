package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/metrics"
	"github.com/fsdevblog/groph-receipts/internal/receipttext"
	"github.com/fsdevblog/groph-receipts/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	HealthRoute  = "/"
	MetricsRoute = "/metrics"

	RouteGroup             = "/api"
	RegisterRoute          = "/auth/register"
	LoginRoute             = "/auth/login"
	ReceiptsRoute          = "/receipts"
	ReceiptsStatsRoute     = "/receipts/stats"
	ReceiptRoute           = "/receipts/:id"
	PublicReceiptRoute     = "/public/receipts/:id"
	PublicReceiptTextRoute = "/public/receipts/:id/text"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	UserService    UserServicer
	ReceiptService ReceiptServicer
	// Formatter печатает публичные чеки, если клиент не задал ширину. По умолчанию receipttext.New().
	Formatter    *receipttext.Formatter
	Metrics      *metrics.Metrics
	JWTSecretKey []byte
	// CORSAllowedOrigins пустой список разрешает любой origin.
	CORSAllowedOrigins []string
	// PublicRateLimit ограничение запросов к публичным чекам с одного IP.
	PublicRateLimit middlewares.RateLimiterConfig
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("init router: %w", err)
	}

	m := args.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Metrics(m))
	r.Use(middlewares.CORS(args.CORSAllowedOrigins))
	r.Use(middlewares.Errors())

	r.GET(HealthRoute, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET(MetricsRoute, gin.WrapH(m.Handler()))

	authHandler := NewAuthHandler(args.UserService)
	receiptsHandler := NewReceiptsHandler(args.ReceiptService, m)
	publicHandler := NewPublicHandler(args.ReceiptService, args.Formatter)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	rateCfg := args.PublicRateLimit
	if rateCfg.OnLimited == nil {
		rateCfg.OnLimited = m.IncrementPublicRateLimited
	}
	public := api.Group("", middlewares.NewIPRateLimiter(rateCfg).Middleware())
	public.GET(PublicReceiptRoute, publicHandler.Show)
	public.GET(PublicReceiptTextRoute, publicHandler.Text)

	// ниже все роуты группы требуют авторизованного пользователя.
	authorized := api.Group("", middlewares.AuthRequired(args.JWTSecretKey))
	authorized.POST(ReceiptsRoute, receiptsHandler.Create)
	authorized.GET(ReceiptsRoute, receiptsHandler.Index)
	authorized.GET(ReceiptsStatsRoute, receiptsHandler.Stats)
	authorized.GET(ReceiptRoute, receiptsHandler.Show)
	return r, nil
}
