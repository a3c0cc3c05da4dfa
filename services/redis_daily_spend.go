package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

/// This file tracks a user's running spend for the current calendar day

// DailySpend is the rolling total of money a user moved out of their
// wallet today. It resets at midnight via key expiry.
type DailySpend struct {
	UserID      int64
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

// isSameDay checks if two times are on the same calendar day
func isSameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func dailySpendKey(userID int64) string {
	return fmt.Sprintf("daily_spend:%d", userID)
}

func (r *RedisService) TrackDailySpend(ctx context.Context, userID int64, amount decimal.Decimal) error {
	key := dailySpendKey(userID)

	current, err := r.GetDailySpend(ctx, userID)
	if err != nil {
		return err
	}

	if current.CreatedAt.IsZero() || !isSameDay(current.CreatedAt, time.Now()) {
		current = DailySpend{
			UserID:      userID,
			TotalAmount: amount,
			CreatedAt:   time.Now(),
		}
	} else {
		current.TotalAmount = current.TotalAmount.Add(amount)
	}

	err = r.SetHash(ctx, key, map[string]interface{}{
		"user_id":      current.UserID,
		"total_amount": current.TotalAmount.String(),
		"created_at":   current.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to store daily spend: %w", err)
	}

	// Expire at the next midnight so a stale hash never leaks into a new day
	midnight := time.Now().Add(24 * time.Hour).Truncate(24 * time.Hour)
	if err := r.ExpireAt(ctx, key, midnight); err != nil {
		return fmt.Errorf("failed to set expiration: %w", err)
	}

	return nil
}

func (r *RedisService) GetDailySpend(ctx context.Context, userID int64) (DailySpend, error) {
	fields, err := r.GetHash(ctx, dailySpendKey(userID))
	if err != nil {
		return DailySpend{}, fmt.Errorf("failed to get daily spend: %w", err)
	}

	if len(fields) == 0 {
		return DailySpend{
			UserID:      userID,
			TotalAmount: decimal.Zero,
		}, nil
	}

	createdAt, err := time.Parse(time.RFC3339, fields["created_at"])
	if err != nil {
		return DailySpend{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	amount, err := decimal.NewFromString(fields["total_amount"])
	if err != nil {
		return DailySpend{}, fmt.Errorf("failed to parse total_amount: %w", err)
	}

	spend := DailySpend{
		UserID:      userID,
		TotalAmount: amount,
		CreatedAt:   createdAt,
	}

	if !isSameDay(spend.CreatedAt, time.Now()) {
		return DailySpend{
			UserID:      userID,
			TotalAmount: decimal.Zero,
		}, nil
	}

	return spend, nil
}
