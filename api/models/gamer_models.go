package models

import (
	"time"

	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/catalog"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/matching"
	"github.com/google/uuid"
)

type GamerResponse struct {
	ID                  int64    `json:"id"`
	Username            string   `json:"username"`
	Gender              string   `json:"gender"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Experience          int32    `json:"experience"`
	Rating              string   `json:"rating"`
	ReviewCount         int32    `json:"review_count"`
	ResponseTimeSeconds int32    `json:"response_time_seconds"`
	IsOnline            bool     `json:"is_online"`
	IsAcceptingOrders   bool     `json:"is_accepting_orders"`
	MinOrderDuration    int32    `json:"min_order_duration"`
	MaxOrderDuration    int32    `json:"max_order_duration"`
	Skills              []string `json:"skills"`
	LowestPrice         string   `json:"lowest_price"`
}

func ToGamerResponse(p *matching.Profile) GamerResponse {
	return GamerResponse{
		ID:                  p.ID,
		Username:            p.Username,
		Gender:              p.Gender,
		Title:               p.Title,
		Description:         p.Description,
		Experience:          p.Experience,
		Rating:              p.Rating.StringFixed(2),
		ReviewCount:         p.ReviewCount,
		ResponseTimeSeconds: p.ResponseTimeSeconds,
		IsOnline:            p.IsOnline,
		IsAcceptingOrders:   p.IsAcceptingOrders,
		MinOrderDuration:    p.MinOrderDuration,
		MaxOrderDuration:    p.MaxOrderDuration,
		Skills:              p.Skills,
		LowestPrice:         p.LowestPrice.String(),
	}
}

type GamerSearchResponse struct {
	Gamers     []GamerResponse `json:"gamers"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

func ToGamerSearchResponse(result *matching.Result) GamerSearchResponse {
	gamers := make([]GamerResponse, 0, len(result.Gamers))
	for i := range result.Gamers {
		gamers = append(gamers, ToGamerResponse(&result.Gamers[i]))
	}
	return GamerSearchResponse{
		Gamers:     gamers,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}
}

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	IsActive    bool      `json:"is_active"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToServiceResponse(s *db.GamerService) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		IsActive:    s.IsActive,
		Tags:        s.Tags,
		CreatedAt:   s.CreatedAt,
	}
}

type GamerDetailResponse struct {
	GamerResponse
	Services []ServiceResponse `json:"services"`
}

func ToGamerDetailResponse(detail *catalog.GamerDetail) GamerDetailResponse {
	services := make([]ServiceResponse, 0, len(detail.Services))
	for i := range detail.Services {
		services = append(services, ToServiceResponse(&detail.Services[i]))
	}
	return GamerDetailResponse{
		GamerResponse: ToGamerResponse(&detail.Profile),
		Services:      services,
	}
}
