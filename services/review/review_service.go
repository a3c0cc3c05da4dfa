package review

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/catalog"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/monitoring/logging"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/order"
	"github.com/DeltaPlay/DeltaPlay-Backend/utils"
	"github.com/google/uuid"
)

// ReviewService accepts one review per completed order and keeps the
// gamer's cached rating in step with the review table. Insert and rating
// recompute run in one transaction so the profile aggregate can never
// drift from the reviews that produced it.
type ReviewService struct {
	store   *db.Store
	catalog *catalog.CatalogService
	logger  *logging.Logger
}

func NewReviewService(store *db.Store, catalogService *catalog.CatalogService, logger *logging.Logger) *ReviewService {
	return &ReviewService{
		store:   store,
		catalog: catalogService,
		logger:  logger,
	}
}

type SubmitReviewInput struct {
	OrderID     uuid.UUID
	CustomerID  int64
	Rating      int32
	Comment     string
	Tags        []string
	IsAnonymous bool
}

func (r *ReviewService) SubmitReview(ctx context.Context, input SubmitReviewInput) (db.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return db.Review{}, ErrInvalidRating
	}

	var created db.Review
	err := r.store.ExecTx(ctx, func(q *db.Queries) error {
		ord, err := q.GetOrder(ctx, input.OrderID)
		if err == sql.ErrNoRows {
			return ErrOrderNotFound
		} else if err != nil {
			return err
		}
		if ord.CustomerID != input.CustomerID {
			return ErrNotOrderCustomer
		}
		if ord.Status != order.StatusCompleted {
			return ErrOrderNotCompleted
		}

		created, err = q.InsertReview(ctx, db.InsertReviewParams{
			ID:          uuid.New(),
			OrderID:     ord.ID,
			CustomerID:  ord.CustomerID,
			GamerID:     ord.GamerID,
			Rating:      input.Rating,
			Comment:     utils.ToSQLNullString(input.Comment),
			Tags:        input.Tags,
			IsAnonymous: input.IsAnonymous,
		})
		if db.IsDuplicateEntry(err) {
			return ErrAlreadyReviewed
		} else if err != nil {
			return err
		}

		aggregate, err := q.AggregateGamerReviews(ctx, ord.GamerID)
		if err != nil {
			return err
		}
		return q.UpdateGamerRating(ctx, db.UpdateGamerRatingParams{
			UserID:      ord.GamerID,
			Rating:      aggregate.Rating,
			ReviewCount: int32(aggregate.ReviewCount),
			UpdatedAt:   time.Now(),
		})
	})
	if err != nil {
		return db.Review{}, err
	}

	// The gamer's rating changed; search results must pick it up.
	r.catalog.Invalidate()
	r.logger.Info(fmt.Sprintf("review recorded for order %v, gamer %v", created.OrderID, created.GamerID))
	return created, nil
}

// ListGamerReviews returns a gamer's reviews newest first. Anonymous
// reviews keep their customer id in the row; hiding it is the API layer's
// concern.
func (r *ReviewService) ListGamerReviews(ctx context.Context, gamerID int64, page, pageSize int32) ([]db.Review, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return r.store.ListGamerReviews(ctx, db.ListGamerReviewsParams{
		GamerID: gamerID,
		Limit:   pageSize,
		Offset:  (page - 1) * pageSize,
	})
}
