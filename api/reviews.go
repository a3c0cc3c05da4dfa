package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DeltaPlay/DeltaPlay-Backend/api/apistrings"
	models "github.com/DeltaPlay/DeltaPlay-Backend/api/models"
	basemodels "github.com/DeltaPlay/DeltaPlay-Backend/models"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/review"
	"github.com/DeltaPlay/DeltaPlay-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Reviews struct {
	server        *Server
	reviewService *review.ReviewService
}

func (r Reviews) router(server *Server) {
	r.server = server
	r.reviewService = server.reviewService

	serverGroupV1 := server.router.Group("/api/v1/reviews")
	serverGroupV1.POST("", AuthenticatedMiddleware(), r.submitReview)
}

func (r *Reviews) submitReview(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	request := struct {
		OrderID     uuid.UUID `json:"order_id" binding:"required"`
		Rating      int32     `json:"rating" binding:"required"`
		Comment     string    `json:"comment"`
		Tags        []string  `json:"tags"`
		IsAnonymous bool      `json:"is_anonymous"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidReviewInput))
		return
	}

	created, err := r.reviewService.SubmitReview(ctx, review.SubmitReviewInput{
		OrderID:     request.OrderID,
		CustomerID:  activeUser.UserID,
		Rating:      request.Rating,
		Comment:     request.Comment,
		Tags:        request.Tags,
		IsAnonymous: request.IsAnonymous,
	})
	if err != nil {
		r.respondReviewError(ctx, err)
		return
	}

	// The gamer's rating moved, so cached search payloads are stale.
	if err := r.server.redis.BumpCatalogVersion(ctx); err != nil {
		r.server.logger.Warning(fmt.Sprintf("could not bump catalog version: %v", err))
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess("Review Submitted Successfully", models.ToReviewResponse(&created)))
}

func (r *Reviews) respondReviewError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, review.ErrOrderNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.OrderNotFound))
	case errors.Is(err, review.ErrInvalidRating):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidReviewInput))
	case errors.Is(err, review.ErrOrderNotCompleted), errors.Is(err, review.ErrNotOrderCustomer):
		ctx.JSON(http.StatusForbidden, basemodels.NewError(apistrings.ReviewNotAllowed))
	case errors.Is(err, review.ErrAlreadyReviewed):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.AlreadyReviewed))
	default:
		r.server.logger.Error(err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
	}
}
