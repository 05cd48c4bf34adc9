package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/metrics"
	"github.com/fsdevblog/groph-receipts/internal/service"
	"github.com/fsdevblog/groph-receipts/internal/service/tokens"
	"github.com/fsdevblog/groph-receipts/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-receipts/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type ReceiptsHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	metrics            *metrics.Metrics
	mockReceiptService *mocks.MockReceiptServicer
	currentUserID      int64
	currentUserToken   string
}

func TestReceiptsHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReceiptsHandlerTestSuite))
}

func (s *ReceiptsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockReceiptService = mocks.NewMockReceiptServicer(mockCtrl)
	s.metrics = metrics.New()
	s.router = newTestRouter(testRouterArgs{receipts: s.mockReceiptService, metrics: s.metrics})

	s.currentUserID = 1
	token, err := tokens.GenerateUserJWT(s.currentUserID, time.Hour, testJWTSecret)
	s.Require().NoError(err)
	s.currentUserToken = token
}

func (s *ReceiptsHandlerTestSuite) request(method, url, body, token string) (int, string) {
	opts := []func(*testutils.RequestOptions){testutils.WithHeader("Content-Type", "application/json")}
	if token != "" {
		opts = append(opts, testutils.WithBearer(token))
	}
	args := testutils.RequestArgs{Router: s.router, Method: method, URL: url}
	if body != "" {
		args.Body = testutils.JSONBody(body)
	}
	res := testutils.MakeRequest(args, opts...)
	return res.StatusCode, testutils.ReadBody(res)
}

func (s *ReceiptsHandlerTestSuite) TestCreate() {
	s.mockReceiptService.EXPECT().
		Create(gomock.Any(), s.currentUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, cart service.Cart) (*domain.Receipt, error) {
			switch cart.Items[0].Name {
			case "Widget":
				s.True(dec("10.50").Equal(cart.Items[0].UnitPrice))
				s.True(dec("2").Equal(cart.Items[0].Quantity))
				s.Equal(domain.PaymentCash, cart.Payment.Method)
				s.True(dec("50").Equal(cart.Payment.Tendered))
				return sampleReceipt(1, s.currentUserID), nil
			case "Expensive":
				return nil, domain.NewInsufficientPaymentError(dec("100"), dec("50"))
			default:
				return nil, domain.NewValidationError("products[0].name", "must not be blank")
			}
		}).Times(3)

	cases := []struct {
		name       string
		body       string
		jwtToken   string
		wantStatus int
		wantBody   string
	}{
		{
			name: "all ok",
			body: `{"products":[{"name":"Widget","price":10.50,"quantity":2}],` +
				`"payment":{"type":"cash","amount":"50.00"}}`,
			jwtToken:   s.currentUserToken,
			wantStatus: http.StatusCreated,
			wantBody:   sampleReceiptJSON,
		}, {
			name: "insufficient payment",
			body: `{"products":[{"name":"Expensive","price":100,"quantity":1}],` +
				`"payment":{"type":"cash","amount":50}}`,
			jwtToken:   s.currentUserToken,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Payment amount is insufficient"}`,
		}, {
			name: "service validation",
			body: `{"products":[{"name":" ","price":1,"quantity":1}],` +
				`"payment":{"type":"cash","amount":50}}`,
			jwtToken:   s.currentUserToken,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"validation failed on ` + "`products[0].name`" + `: must not be blank"}`,
		}, {
			name: "price out of range",
			body: `{"products":[{"name":"Widget","price":"10000000000.00","quantity":1}],` +
				`"payment":{"type":"cash","amount":50}}`,
			jwtToken:   s.currentUserToken,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"validation failed on ` + "`products[0].price`" + `: dmax=9999999999.99"}`,
		}, {
			name:       "malformed json",
			body:       `{"products":[`,
			jwtToken:   s.currentUserToken,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"bad request"}`,
		}, {
			name:       "not a number",
			body:       `{"products":[{"name":"Widget","price":"ten","quantity":1}]}`,
			jwtToken:   s.currentUserToken,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"bad request"}`,
		}, {
			name:       "not authorized",
			body:       `{"products":[]}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Unauthorized"}`,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.request(http.MethodPost, RouteGroup+ReceiptsRoute, t.body, t.jwtToken)
			s.Equal(t.wantStatus, status)
			s.JSONEq(t.wantBody, body)
		})
	}

	s.InDelta(1, testutil.ToFloat64(s.metrics.ReceiptsCreated.WithLabelValues("cash")), 0)
	s.InDelta(1, testutil.ToFloat64(s.metrics.InsufficientPayments), 0)
}

func (s *ReceiptsHandlerTestSuite) TestIndex() {
	page := &domain.ReceiptPage{
		Items:      []domain.Receipt{*sampleReceipt(1, s.currentUserID)},
		Total:      11,
		Page:       2,
		Size:       10,
		TotalPages: 2,
		HasNext:    false,
		HasPrev:    true,
	}
	s.mockReceiptService.EXPECT().
		Query(gomock.Any(), s.currentUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, q service.ReceiptQuery) (*domain.ReceiptPage, error) {
			if q.SortBy == "price" {
				return nil, domain.NewValidationError("sort_by", "unknown sort field `price`")
			}
			s.Require().NotNil(q.Page)
			s.Equal(2, *q.Page)
			s.Nil(q.Size)
			s.Equal("2024-01-01", q.DateFrom)
			s.Equal("10.5", q.MinTotal)
			s.Equal("cashless", q.PaymentMethod)
			s.Equal("coffee", q.Search)
			s.Equal("total", q.SortBy)
			s.Equal("asc", q.SortOrder)
			return page, nil
		}).Times(2)

	status, body := s.request(http.MethodGet,
		RouteGroup+ReceiptsRoute+"?page=2&date_from=2024-01-01&min_total=10.5&payment_type=cashless"+
			"&search=coffee&sort_by=total&sort_order=asc",
		"", s.currentUserToken)
	s.Equal(http.StatusOK, status)
	s.JSONEq(`{"items":[`+sampleReceiptJSON+`],"total":11,"page":2,"size":10,"total_pages":2,`+
		`"has_next":false,"has_prev":true}`, body)

	status, body = s.request(http.MethodGet, RouteGroup+ReceiptsRoute+"?sort_by=price", "", s.currentUserToken)
	s.Equal(http.StatusUnprocessableEntity, status)
	s.JSONEq(`{"error":"validation failed on `+"`sort_by`"+`: unknown sort field `+"`price`"+`"}`, body)

	// сервис не вызывается: page не число.
	status, _ = s.request(http.MethodGet, RouteGroup+ReceiptsRoute+"?page=abc", "", s.currentUserToken)
	s.Equal(http.StatusUnprocessableEntity, status)

	status, _ = s.request(http.MethodGet, RouteGroup+ReceiptsRoute, "", "")
	s.Equal(http.StatusUnauthorized, status)
}

func (s *ReceiptsHandlerTestSuite) TestIndexEmpty() {
	s.mockReceiptService.EXPECT().Query(gomock.Any(), s.currentUserID, service.ReceiptQuery{}).
		Return(&domain.ReceiptPage{Items: []domain.Receipt{}, Page: 1, Size: 10}, nil)

	status, body := s.request(http.MethodGet, RouteGroup+ReceiptsRoute, "", s.currentUserToken)
	s.Equal(http.StatusOK, status)
	s.JSONEq(`{"items":[],"total":0,"page":1,"size":10,"total_pages":0,"has_next":false,"has_prev":false}`, body)
}

func (s *ReceiptsHandlerTestSuite) TestStats() {
	s.mockReceiptService.EXPECT().Stats(gomock.Any(), s.currentUserID).Return(&domain.StatsSummary{
		Count: 3,
		Sum:   dec("305.5"),
		Avg:   dec("101.83"),
		Max:   dec("175"),
		Min:   dec("45"),
		ByMethod: []domain.MethodStats{
			{Method: domain.PaymentCash, Count: 2, Sum: dec("260.5")},
			{Method: domain.PaymentCashless, Count: 1, Sum: dec("45")},
		},
	}, nil)

	status, body := s.request(http.MethodGet, RouteGroup+ReceiptsStatsRoute, "", s.currentUserToken)
	s.Equal(http.StatusOK, status)
	s.JSONEq(`{
		"total_receipts": 3,
		"total_amount": "305.50",
		"average_amount": "101.83",
		"max_amount": "175.00",
		"min_amount": "45.00",
		"payment_type_stats": [
			{"type": "cash", "count": 2, "total": "260.50"},
			{"type": "cashless", "count": 1, "total": "45.00"}
		]
	}`, body)
}

func (s *ReceiptsHandlerTestSuite) TestShow() {
	anotherUserToken, err := tokens.GenerateUserJWT(2, time.Hour, testJWTSecret)
	s.Require().NoError(err)

	s.mockReceiptService.EXPECT().GetByID(gomock.Any(), int64(1), s.currentUserID).
		Return(sampleReceipt(1, s.currentUserID), nil)
	s.mockReceiptService.EXPECT().GetByID(gomock.Any(), int64(1), int64(2)).
		Return(nil, fmt.Errorf("getting receipt 1: %w", domain.ErrRecordNotFound))
	s.mockReceiptService.EXPECT().GetByID(gomock.Any(), int64(3), s.currentUserID).
		Return(nil, fmt.Errorf("getting receipt 3: %w", domain.ErrUnknown))

	cases := []struct {
		name       string
		url        string
		jwtToken   string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "own receipt",
			url:        RouteGroup + "/receipts/1",
			jwtToken:   s.currentUserToken,
			wantStatus: http.StatusOK,
			wantBody:   sampleReceiptJSON,
		}, {
			name:       "foreign receipt",
			url:        RouteGroup + "/receipts/1",
			jwtToken:   anotherUserToken,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Receipt not found"}`,
		}, {
			name:       "storage failure",
			url:        RouteGroup + "/receipts/3",
			jwtToken:   s.currentUserToken,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		}, {
			name:       "not a number",
			url:        RouteGroup + "/receipts/abc",
			jwtToken:   s.currentUserToken,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "zero id",
			url:        RouteGroup + "/receipts/0",
			jwtToken:   s.currentUserToken,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.request(http.MethodGet, t.url, "", t.jwtToken)
			s.Equal(t.wantStatus, status)
			if t.wantBody != "" {
				s.JSONEq(t.wantBody, body)
			}
		})
	}
}
