package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBilledMinutesFullSession(t *testing.T) {
	// Playing the whole booked window, or over-running it, bills the window.
	assert.Equal(t, int32(60), BilledMinutes(60, 60, 15))
	assert.Equal(t, int32(60), BilledMinutes(60, 75, 15))
}

func TestBilledMinutesShortSessionRoundsUp(t *testing.T) {
	// 37 played minutes round up to the next 15-minute block.
	assert.Equal(t, int32(45), BilledMinutes(60, 37, 15))
	assert.Equal(t, int32(15), BilledMinutes(60, 1, 15))
	assert.Equal(t, int32(30), BilledMinutes(60, 30, 15))
}

func TestBilledMinutesRoundingNeverExceedsBooked(t *testing.T) {
	// 50 of 50 booked minutes would round to 60; the cap keeps it at 50.
	assert.Equal(t, int32(50), BilledMinutes(50, 50, 15))
	assert.Equal(t, int32(50), BilledMinutes(50, 48, 15))
}

func TestBilledMinutesZeroActualBillsBooked(t *testing.T) {
	// A session completed without a measured duration bills as booked.
	assert.Equal(t, int32(60), BilledMinutes(60, 0, 15))
}

func TestActualMinutesRoundsSecondsUp(t *testing.T) {
	assert.Equal(t, int32(1), ActualMinutes(45*time.Second))
	assert.Equal(t, int32(1), ActualMinutes(60*time.Second))
	assert.Equal(t, int32(2), ActualMinutes(61*time.Second))
	assert.Equal(t, int32(37), ActualMinutes(36*time.Minute+10*time.Second))
}

func TestActualMinutesNeverZero(t *testing.T) {
	// A sub-minute session measures one minute, so it bills one granularity
	// block instead of falling back to the full booked window.
	assert.Equal(t, int32(1), ActualMinutes(0))
	assert.Equal(t, int32(1), ActualMinutes(-5*time.Second))
	assert.Equal(t, int32(15), BilledMinutes(60, ActualMinutes(45*time.Second), 15))
}

func TestBilledMinutesNoGranularity(t *testing.T) {
	assert.Equal(t, int32(37), BilledMinutes(60, 37, 0))
}

func TestBillAmount(t *testing.T) {
	price := decimal.RequireFromString("80") // per hour

	assert.True(t, BillAmount(price, 60).Equal(decimal.RequireFromString("80")))
	assert.True(t, BillAmount(price, 30).Equal(decimal.RequireFromString("40")))
	assert.True(t, BillAmount(price, 45).Equal(decimal.RequireFromString("60")))
}

func TestBillAmountRoundsToCents(t *testing.T) {
	price := decimal.RequireFromString("50")

	// 50 * 25 / 60 = 20.8333... rounds to 20.83.
	assert.True(t, BillAmount(price, 25).Equal(decimal.RequireFromString("20.83")))
}

func TestCommissionAmount(t *testing.T) {
	rate := decimal.RequireFromString("0.10")

	assert.True(t, CommissionAmount(decimal.RequireFromString("60"), rate).Equal(decimal.RequireFromString("6")))
	assert.True(t, CommissionAmount(decimal.RequireFromString("20.83"), rate).Equal(decimal.RequireFromString("2.08")))
	assert.True(t, CommissionAmount(decimal.RequireFromString("60"), decimal.Zero).IsZero())
}
