package models

import (
	"time"

	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	"github.com/google/uuid"
)

type OrderResponse struct {
	ID                    uuid.UUID  `json:"id"`
	OrderNumber           string     `json:"order_number"`
	CustomerID            int64      `json:"customer_id"`
	GamerID               int64      `json:"gamer_id"`
	ServiceID             uuid.UUID  `json:"service_id"`
	Status                string     `json:"status"`
	PaymentStatus         string     `json:"payment_status"`
	DurationMinutes       int32      `json:"duration_minutes"`
	ActualDurationMinutes *int32     `json:"actual_duration_minutes,omitempty"`
	Price                 string     `json:"price"`
	TotalAmount           string     `json:"total_amount"`
	Commission            string     `json:"commission"`
	ScheduledAt           time.Time  `json:"scheduled_at"`
	StartedAt             *time.Time `json:"started_at,omitempty"`
	EndedAt               *time.Time `json:"ended_at,omitempty"`
	Requirements          string     `json:"requirements,omitempty"`
	CancellationReason    string     `json:"cancellation_reason,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func ToOrderResponse(o *db.Order) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerID:      o.CustomerID,
		GamerID:         o.GamerID,
		ServiceID:       o.ServiceID,
		Status:          o.Status,
		PaymentStatus:   o.PaymentStatus,
		DurationMinutes: o.DurationMinutes,
		Price:           o.Price,
		TotalAmount:     o.TotalAmount,
		Commission:      o.Commission,
		ScheduledAt:     o.ScheduledAt,
		Requirements:    o.Requirements.String,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.ActualDurationMinutes.Valid {
		resp.ActualDurationMinutes = &o.ActualDurationMinutes.Int32
	}
	if o.StartedAt.Valid {
		resp.StartedAt = &o.StartedAt.Time
	}
	if o.EndedAt.Valid {
		resp.EndedAt = &o.EndedAt.Time
	}
	if o.CancellationReason.Valid {
		resp.CancellationReason = o.CancellationReason.String
	}
	return resp
}

func ToOrderCollectionResponse(orders []db.Order) []OrderResponse {
	collection := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		collection = append(collection, ToOrderResponse(&orders[i]))
	}
	return collection
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Page   int32           `json:"page"`
}
