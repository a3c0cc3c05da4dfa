package matching

import (
	"github.com/shopspring/decimal"
)

// Profile is the catalog snapshot row the engine ranks. It is assembled by
// the catalog service from gamer_profiles joined with the lowest active
// service price, so the engine never touches the database.
type Profile struct {
	ID                  int64           `json:"id"`
	Username            string          `json:"username"`
	Gender              string          `json:"gender"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Experience          int32           `json:"experience"`
	Rating              decimal.Decimal `json:"rating"`
	ReviewCount         int32           `json:"review_count"`
	ResponseTimeSeconds int32           `json:"response_time_seconds"`
	IsOnline            bool            `json:"is_online"`
	IsAcceptingOrders   bool            `json:"is_accepting_orders"`
	MinOrderDuration    int32           `json:"min_order_duration"`
	MaxOrderDuration    int32           `json:"max_order_duration"`
	Skills              []string        `json:"skills"`
	LowestPrice         decimal.Decimal `json:"lowest_price"`
	HasActiveService    bool            `json:"has_active_service"`
}

type SortKey string

const (
	SortByRating       SortKey = "rating"
	SortByPrice        SortKey = "price"
	SortByExperience   SortKey = "experience"
	SortByResponseTime SortKey = "response_time"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

type Filters struct {
	Keywords   string      `json:"keywords"`
	Skills     []string    `json:"skills"`
	PriceRange *PriceRange `json:"price_range"`
	MinRating  *decimal.Decimal
	Gender     string `json:"gender"`
	IsOnline   *bool  `json:"is_online"`
	SortBy     SortKey
	SortOrder  SortOrder
}

type Result struct {
	Gamers     []Profile `json:"gamers"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}
