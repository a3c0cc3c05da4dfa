package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/DeltaPlay/DeltaPlay-Backend/api/apistrings"
	models "github.com/DeltaPlay/DeltaPlay-Backend/api/models"
	basemodels "github.com/DeltaPlay/DeltaPlay-Backend/models"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/catalog"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/matching"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/review"
	"github.com/DeltaPlay/DeltaPlay-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Gamers struct {
	server         *Server
	catalogService *catalog.CatalogService
	reviewService  *review.ReviewService
}

func (g Gamers) router(server *Server) {
	g.server = server
	g.catalogService = server.catalogService
	g.reviewService = server.reviewService

	serverGroupV1 := server.router.Group("/api/v1/gamers")
	serverGroupV1.GET("", g.searchGamers)
	serverGroupV1.GET(":id", g.getGamer)
	serverGroupV1.GET(":id/reviews", g.getGamerReviews)
	serverGroupV1.PUT("availability", AuthenticatedMiddleware(), g.setAvailability)
}

func (g *Gamers) searchGamers(ctx *gin.Context) {
	filters, ok := parseSearchFilters(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidSearchInput))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))

	// Hot searches are served straight from Redis; the key carries the
	// catalog generation, so catalog writes invalidate every entry at once.
	cacheKey, cacheErr := g.server.redis.SearchCacheKey(ctx, ctx.Request.URL.RawQuery)
	if cacheErr == nil {
		if payload, err := g.server.redis.GetSearchResult(ctx, cacheKey); err == nil {
			var cached models.GamerSearchResponse
			if json.Unmarshal(payload, &cached) == nil {
				ctx.JSON(http.StatusOK, basemodels.NewSuccess("Gamers Fetched Successfully", cached))
				return
			}
		}
	}

	result, err := g.catalogService.Search(ctx, filters, page, pageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	response := models.ToGamerSearchResponse(&result)

	if cacheErr == nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := g.server.redis.CacheSearchResult(ctx, cacheKey, payload); err != nil {
				g.server.logger.Warning(fmt.Sprintf("could not cache search result: %v", err))
			}
		}
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Gamers Fetched Successfully", response))
}

func (g *Gamers) getGamer(ctx *gin.Context) {
	gamerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.GamerNotFound))
		return
	}

	detail, err := g.catalogService.GetGamer(ctx, gamerID)
	if errors.Is(err, catalog.ErrGamerNotFound) {
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.GamerNotFound))
		return
	} else if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Gamer Fetched Successfully", models.ToGamerDetailResponse(&detail)))
}

func (g *Gamers) getGamerReviews(ctx *gin.Context) {
	gamerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.GamerNotFound))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))

	reviews, err := g.reviewService.ListGamerReviews(ctx, gamerID, int32(page), int32(pageSize))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Reviews Fetched Successfully", models.ToReviewCollectionResponse(reviews)))
}

func (g *Gamers) setAvailability(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}
	if activeUser.Role != utils.RoleGamer {
		ctx.JSON(http.StatusForbidden, basemodels.NewError(apistrings.GamerOnly))
		return
	}

	request := struct {
		IsOnline          *bool `json:"is_online" binding:"required"`
		IsAcceptingOrders *bool `json:"is_accepting_orders" binding:"required"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidStatusInput))
		return
	}

	err = g.catalogService.SetAvailability(ctx, activeUser.UserID, *request.IsOnline, *request.IsAcceptingOrders)
	if errors.Is(err, catalog.ErrGamerNotFound) {
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.GamerNotFound))
		return
	} else if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if err := g.server.redis.BumpCatalogVersion(ctx); err != nil {
		g.server.logger.Warning(fmt.Sprintf("could not bump catalog version: %v", err))
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Availability Updated Successfully", nil))
}

// parseSearchFilters maps query parameters onto the matching engine's
// filter set. Unknown sort keys fall back to the engine's defaults; a
// malformed numeric filter rejects the request.
func parseSearchFilters(ctx *gin.Context) (matching.Filters, bool) {
	filters := matching.Filters{
		Keywords:  ctx.Query("keywords"),
		Gender:    ctx.Query("gender"),
		SortBy:    matching.SortKey(ctx.Query("sort_by")),
		SortOrder: matching.SortOrder(ctx.Query("sort_order")),
	}

	if skills := ctx.Query("skills"); skills != "" {
		filters.Skills = strings.Split(skills, ",")
	}

	minPrice := ctx.Query("min_price")
	maxPrice := ctx.Query("max_price")
	if minPrice != "" || maxPrice != "" {
		priceRange := matching.PriceRange{}
		if minPrice != "" {
			min, err := decimal.NewFromString(minPrice)
			if err != nil {
				return matching.Filters{}, false
			}
			priceRange.Min = min
		}
		if maxPrice != "" {
			max, err := decimal.NewFromString(maxPrice)
			if err != nil {
				return matching.Filters{}, false
			}
			priceRange.Max = max
		}
		filters.PriceRange = &priceRange
	}

	if minRating := ctx.Query("min_rating"); minRating != "" {
		rating, err := decimal.NewFromString(minRating)
		if err != nil {
			return matching.Filters{}, false
		}
		filters.MinRating = &rating
	}

	if isOnline := ctx.Query("is_online"); isOnline != "" {
		online, err := strconv.ParseBool(isOnline)
		if err != nil {
			return matching.Filters{}, false
		}
		filters.IsOnline = &online
	}

	return filters, true
}
