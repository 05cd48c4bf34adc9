package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	ErrReceiptNotFound     = errors.New("Receipt not found")              //nolint:staticcheck
	ErrPaymentInsufficient = errors.New("Payment amount is insufficient") //nolint:staticcheck
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа - вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// abortWithError прерывает обработку и оставляет ошибку для middlewares.Errors, ответ пишет он.
func abortWithError(c *gin.Context, status int, err error, errType gin.ErrorType) {
	_ = c.Error(err).SetType(errType)
	c.Status(status)
	c.Abort()
}

// abortWithBindError ошибки валидатора отдает как 422 с перечнем полей, остальные ошибки разбора - как 400.
func abortWithBindError(c *gin.Context, err error) {
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		abortWithError(c, http.StatusUnprocessableEntity, errors.New(validationMessage(valErrs)), gin.ErrorTypePublic)
		return
	}
	abortWithError(c, http.StatusBadRequest, err, gin.ErrorTypeBind)
}

// validationMessage собирает сообщение вида "validation failed on `products[0].price`: dmax".
func validationMessage(valErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(valErrs))
	for _, fe := range valErrs {
		field := fe.Namespace()
		// первый сегмент - имя структуры параметров.
		if _, rest, found := strings.Cut(field, "."); found {
			field = rest
		}
		reason := fe.Tag()
		if fe.Param() != "" {
			reason += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("validation failed on `%s`: %s", field, reason))
	}
	return strings.Join(parts, "; ")
}

// abortWithServiceError переводит ошибку сервиса чеков в http статус.
func abortWithServiceError(c *gin.Context, err error) {
	var (
		valErr *domain.ValidationError
		payErr *domain.InsufficientPaymentError
	)
	switch {
	case errors.As(err, &valErr):
		abortWithError(c, http.StatusUnprocessableEntity, valErr, gin.ErrorTypePublic)
	case errors.As(err, &payErr):
		abortWithError(c, http.StatusBadRequest, ErrPaymentInsufficient, gin.ErrorTypePublic)
		// подробности (итог и внесенная сумма) попадают только в лог.
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrRecordNotFound):
		abortWithError(c, http.StatusNotFound, ErrReceiptNotFound, gin.ErrorTypePublic)
	default:
		abortWithError(c, http.StatusInternalServerError, err, gin.ErrorTypePrivate)
	}
}

// abortWithParamsError ошибки разбора query и path параметров - всегда 422.
func abortWithParamsError(c *gin.Context, err error) {
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		abortWithBindError(c, err)
		return
	}
	abortWithError(c, http.StatusUnprocessableEntity,
		fmt.Errorf("invalid request parameters: %s", err.Error()), gin.ErrorTypePublic)
}
