package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-receipts/internal/receipttext"
	"github.com/gin-gonic/gin"
)

const (
	MinTextWidth = 20
	MaxTextWidth = 120
)

// PublicHandler просмотр чека по ссылке без авторизации.
type PublicHandler struct {
	receiptService ReceiptServicer
	formatter      *receipttext.Formatter
}

func NewPublicHandler(receiptService ReceiptServicer, formatter *receipttext.Formatter) *PublicHandler {
	if formatter == nil {
		formatter = receipttext.New()
	}
	return &PublicHandler{
		receiptService: receiptService,
		formatter:      formatter,
	}
}

// Show GET RouteGroup + PublicReceiptRoute.
func (h *PublicHandler) Show(c *gin.Context) {
	var uri receiptURIParams
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithParamsError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	receipt, err := h.receiptService.GetPublic(ctx, uri.ID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newReceiptResponse(receipt))
}

type receiptTextParams struct {
	Width *int `binding:"omitempty,min=20,max=120" form:"width"`
}

// Text GET RouteGroup + PublicReceiptTextRoute. Чек в текстовом виде, ширина строки задается
// параметром width.
func (h *PublicHandler) Text(c *gin.Context) {
	var uri receiptURIParams
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithParamsError(c, bindErr)
		return
	}
	var params receiptTextParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithParamsError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	receipt, err := h.receiptService.GetPublic(ctx, uri.ID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	formatter := h.formatter
	if params.Width != nil {
		formatter = receipttext.New(receipttext.WithLineWidth(*params.Width))
	}
	c.String(http.StatusOK, formatter.Render(receipt))
}
