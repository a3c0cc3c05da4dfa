package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/matching"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/monitoring/logging"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

const (
	snapshotKey      = "catalog:snapshot"
	snapshotTTL      = 2 * time.Minute
	snapshotSweepTTL = 5 * time.Minute
)

// CatalogService assembles the searchable gamer snapshot. The snapshot is
// a full in-memory copy of active gamer profiles with their cheapest
// active service attached; the matching engine ranks it without touching
// the database. Availability writes invalidate the cache so a gamer going
// offline disappears from results within one request.
type CatalogService struct {
	store  *db.Store
	logger *logging.Logger
	cache  *cache.Cache
}

func NewCatalogService(store *db.Store, logger *logging.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
		cache:  cache.New(snapshotTTL, snapshotSweepTTL),
	}
}

// Snapshot returns the cached catalog, rebuilding it from the database on
// a miss.
func (c *CatalogService) Snapshot(ctx context.Context) ([]matching.Profile, error) {
	if cached, found := c.cache.Get(snapshotKey); found {
		return cached.([]matching.Profile), nil
	}

	rows, err := c.store.ListGamerCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load gamer catalog: %w", err)
	}
	services, err := c.store.ListActiveServicesForGamers(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load gamer services: %w", err)
	}

	lowest := make(map[int64]decimal.Decimal, len(rows))
	for _, s := range services {
		price, err := decimal.NewFromString(s.Price)
		if err != nil {
			c.logger.Error(fmt.Sprintf("skipping service %v with bad price %q: %v", s.ID, s.Price, err))
			continue
		}
		if current, ok := lowest[s.GamerID]; !ok || price.LessThan(current) {
			lowest[s.GamerID] = price
		}
	}

	snapshot := make([]matching.Profile, 0, len(rows))
	for _, row := range rows {
		rating, err := decimal.NewFromString(row.Rating)
		if err != nil {
			rating = decimal.Zero
		}
		price, hasService := lowest[row.ID]
		snapshot = append(snapshot, matching.Profile{
			ID:                  row.ID,
			Username:            row.Username,
			Gender:              row.Gender,
			Title:               row.Title,
			Description:         row.Description,
			Experience:          row.Experience,
			Rating:              rating,
			ReviewCount:         row.ReviewCount,
			ResponseTimeSeconds: row.ResponseTimeSeconds,
			IsOnline:            row.IsOnline,
			IsAcceptingOrders:   row.IsAcceptingOrders,
			MinOrderDuration:    row.MinOrderDuration,
			MaxOrderDuration:    row.MaxOrderDuration,
			Skills:              row.Skills,
			LowestPrice:         price,
			HasActiveService:    hasService,
		})
	}

	c.cache.Set(snapshotKey, snapshot, cache.DefaultExpiration)
	return snapshot, nil
}

// Search filters and ranks the snapshot.
func (c *CatalogService) Search(ctx context.Context, filters matching.Filters, page, pageSize int) (matching.Result, error) {
	snapshot, err := c.Snapshot(ctx)
	if err != nil {
		return matching.Result{}, err
	}
	return matching.Search(snapshot, filters, page, pageSize), nil
}

// GamerDetail is the full profile page: the catalog row plus every service
// the gamer offers.
type GamerDetail struct {
	Profile  matching.Profile  `json:"profile"`
	Services []db.GamerService `json:"services"`
}

func (c *CatalogService) GetGamer(ctx context.Context, gamerID int64) (GamerDetail, error) {
	snapshot, err := c.Snapshot(ctx)
	if err != nil {
		return GamerDetail{}, err
	}

	var profile *matching.Profile
	for i := range snapshot {
		if snapshot[i].ID == gamerID {
			profile = &snapshot[i]
			break
		}
	}
	if profile == nil {
		return GamerDetail{}, ErrGamerNotFound
	}

	services, err := c.store.ListGamerServices(ctx, gamerID)
	if err != nil {
		return GamerDetail{}, err
	}
	return GamerDetail{Profile: *profile, Services: services}, nil
}

// SetAvailability flips a gamer's online and accepting flags and drops the
// snapshot so the next search sees the change.
func (c *CatalogService) SetAvailability(ctx context.Context, gamerID int64, isOnline, isAcceptingOrders bool) error {
	_, err := c.store.GetGamerProfile(ctx, gamerID)
	if err == sql.ErrNoRows {
		return ErrGamerNotFound
	} else if err != nil {
		return err
	}

	err = c.store.SetGamerAvailability(ctx, db.SetGamerAvailabilityParams{
		UserID:            gamerID,
		IsOnline:          isOnline,
		IsAcceptingOrders: isAcceptingOrders,
		UpdatedAt:         time.Now(),
	})
	if err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// Invalidate drops the cached snapshot. Called after any write that
// changes what the catalog should show.
func (c *CatalogService) Invalidate() {
	c.cache.Delete(snapshotKey)
}
