package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsSameDay(t *testing.T) {
	noon := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	assert.True(t, isSameDay(noon, noon.Add(11*time.Hour)))
	assert.False(t, isSameDay(noon, noon.Add(13*time.Hour)))
	assert.False(t, isSameDay(noon, noon.AddDate(-1, 0, 0)))
}

func TestDailySpendKeyPerUser(t *testing.T) {
	assert.Equal(t, "daily_spend:42", dailySpendKey(42))
	assert.NotEqual(t, dailySpendKey(1), dailySpendKey(2))
}
