package api

import (
	"time"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/pkg/money"
)

// Денежные суммы уходят клиенту строками ровно с двумя знаками, количество - с тремя.

type UserResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ReceiptItemResponse struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
	Total    string `json:"total"`
}

type PaymentResponse struct {
	Type   domain.PaymentMethod `json:"type"`
	Amount string               `json:"amount"`
}

type ReceiptResponse struct {
	ID        int64                 `json:"id"`
	Products  []ReceiptItemResponse `json:"products"`
	Payment   PaymentResponse       `json:"payment"`
	Total     string                `json:"total"`
	Rest      string                `json:"rest"`
	CreatedAt time.Time             `json:"created_at"`
}

type ReceiptListResponse struct {
	Items      []ReceiptResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
	HasNext    bool              `json:"has_next"`
	HasPrev    bool              `json:"has_prev"`
}

type PaymentTypeStatsResponse struct {
	Type  domain.PaymentMethod `json:"type"`
	Count int64                `json:"count"`
	Total string               `json:"total"`
}

type StatsResponse struct {
	TotalReceipts    int64                      `json:"total_receipts"`
	TotalAmount      string                     `json:"total_amount"`
	AverageAmount    string                     `json:"average_amount"`
	MaxAmount        string                     `json:"max_amount"`
	MinAmount        string                     `json:"min_amount"`
	PaymentTypeStats []PaymentTypeStatsResponse `json:"payment_type_stats"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Username: u.Username,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}

func newReceiptResponse(r *domain.Receipt) ReceiptResponse {
	products := make([]ReceiptItemResponse, len(r.Items))
	for i, item := range r.Items {
		products[i] = ReceiptItemResponse{
			Name:     item.Name,
			Price:    money.Format(item.UnitPrice),
			Quantity: money.FormatQuantity(item.Quantity),
			Total:    money.Format(item.LineTotal),
		}
	}
	return ReceiptResponse{
		ID:       r.ID,
		Products: products,
		Payment: PaymentResponse{
			Type:   r.Payment.Method,
			Amount: money.Format(r.Payment.Tendered),
		},
		Total:     money.Format(r.Total),
		Rest:      money.Format(r.Change),
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func newReceiptListResponse(page *domain.ReceiptPage) ReceiptListResponse {
	items := make([]ReceiptResponse, len(page.Items))
	for i := range page.Items {
		items[i] = newReceiptResponse(&page.Items[i])
	}
	return ReceiptListResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		Size:       page.Size,
		TotalPages: page.TotalPages,
		HasNext:    page.HasNext,
		HasPrev:    page.HasPrev,
	}
}

func newStatsResponse(s *domain.StatsSummary) StatsResponse {
	byMethod := make([]PaymentTypeStatsResponse, len(s.ByMethod))
	for i, m := range s.ByMethod {
		byMethod[i] = PaymentTypeStatsResponse{
			Type:  m.Method,
			Count: m.Count,
			Total: money.Format(m.Sum),
		}
	}
	return StatsResponse{
		TotalReceipts:    s.Count,
		TotalAmount:      money.Format(s.Sum),
		AverageAmount:    money.Format(s.Avg),
		MaxAmount:        money.Format(s.Max),
		MinAmount:        money.Format(s.Min),
		PaymentTypeStats: byMethod,
	}
}
