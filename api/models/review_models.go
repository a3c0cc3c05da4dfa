package models

import (
	"time"

	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	CustomerID  *int64    `json:"customer_id,omitempty"`
	GamerID     int64     `json:"gamer_id"`
	Rating      int32     `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	Tags        []string  `json:"tags"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToReviewResponse hides the customer id on anonymous reviews.
func ToReviewResponse(r *db.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:          r.ID,
		OrderID:     r.OrderID,
		GamerID:     r.GamerID,
		Rating:      r.Rating,
		Comment:     r.Comment.String,
		Tags:        r.Tags,
		IsAnonymous: r.IsAnonymous,
		CreatedAt:   r.CreatedAt,
	}
	if !r.IsAnonymous {
		resp.CustomerID = &r.CustomerID
	}
	return resp
}

func ToReviewCollectionResponse(reviews []db.Review) []ReviewResponse {
	collection := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		collection = append(collection, ToReviewResponse(&reviews[i]))
	}
	return collection
}
