package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ReceiptsHandler struct {
	receiptService ReceiptServicer
	events         ReceiptEventRecorder
}

func NewReceiptsHandler(receiptService ReceiptServicer, events ReceiptEventRecorder) *ReceiptsHandler {
	return &ReceiptsHandler{
		receiptService: receiptService,
		events:         events,
	}
}

// Верхние границы соответствуют разрядности колонок NUMERIC(12,2) и NUMERIC(10,3).
type ReceiptItemParams struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `binding:"dmax=9999999999.99" json:"price"`
	Quantity decimal.Decimal `binding:"dmax=9999999.999"   json:"quantity"`
}

type PaymentParams struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `binding:"dmax=9999999999.99" json:"amount"`
}

type ReceiptCreateParams struct {
	Products []ReceiptItemParams `binding:"dive" json:"products"`
	Payment  PaymentParams       `json:"payment"`
}

func (p ReceiptCreateParams) toCart() service.Cart {
	items := make([]service.CartItem, len(p.Products))
	for i, product := range p.Products {
		items[i] = service.CartItem{
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  product.Quantity,
		}
	}
	return service.Cart{
		Items: items,
		Payment: domain.Payment{
			Method:   domain.PaymentMethod(p.Payment.Type),
			Tendered: p.Payment.Amount,
		},
	}
}

// Create POST RouteGroup + ReceiptsRoute. Рассчитывает и сохраняет чек текущего пользователя.
func (h *ReceiptsHandler) Create(c *gin.Context) {
	var params ReceiptCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	receipt, err := h.receiptService.Create(ctx, getUserIDFromContext(c), params.toCart())
	if err != nil {
		var payErr *domain.InsufficientPaymentError
		if errors.As(err, &payErr) {
			h.events.IncrementInsufficientPayments()
		}
		abortWithServiceError(c, err)
		return
	}

	h.events.IncrementReceiptsCreated(receipt.Payment.Method)
	c.JSON(http.StatusCreated, newReceiptResponse(receipt))
}

type ReceiptListParams struct {
	Page          *int   `form:"page"`
	Size          *int   `form:"size"`
	DateFrom      string `form:"date_from"`
	DateTo        string `form:"date_to"`
	MinTotal      string `form:"min_total"`
	MaxTotal      string `form:"max_total"`
	PaymentMethod string `form:"payment_type"`
	Search        string `form:"search"`
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order"`
}

// Index GET RouteGroup + ReceiptsRoute. Страница чеков текущего пользователя с фильтрами и сортировкой.
func (h *ReceiptsHandler) Index(c *gin.Context) {
	var params ReceiptListParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithParamsError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	page, err := h.receiptService.Query(ctx, getUserIDFromContext(c), service.ReceiptQuery{
		Page:          params.Page,
		Size:          params.Size,
		DateFrom:      params.DateFrom,
		DateTo:        params.DateTo,
		MinTotal:      params.MinTotal,
		MaxTotal:      params.MaxTotal,
		PaymentMethod: params.PaymentMethod,
		Search:        params.Search,
		SortBy:        params.SortBy,
		SortOrder:     params.SortOrder,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newReceiptListResponse(page))
}

// Stats GET RouteGroup + ReceiptsStatsRoute.
func (h *ReceiptsHandler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.receiptService.Stats(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newStatsResponse(stats))
}

type receiptURIParams struct {
	ID int64 `binding:"required,min=1" uri:"id"`
}

// Show GET RouteGroup + ReceiptRoute. Чек текущего пользователя, чужой чек - 404.
func (h *ReceiptsHandler) Show(c *gin.Context) {
	var uri receiptURIParams
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithParamsError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	receipt, err := h.receiptService.GetByID(ctx, uri.ID, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newReceiptResponse(receipt))
}
