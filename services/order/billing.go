package order

import (
	"time"

	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// ActualMinutes measures a finished session in whole minutes, rounding
// partial minutes up. Any session that ran at all counts as at least one
// minute, so a short session never reads as zero and falls through to the
// full booked window.
func ActualMinutes(elapsed time.Duration) int32 {
	if elapsed <= 0 {
		return 1
	}
	minutes := int32((elapsed + time.Minute - 1) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// BilledMinutes applies the billing policy to a finished session: the
// customer pays for min(actual, booked), rounded up to the configured
// granularity so that partial blocks bill as whole blocks.
func BilledMinutes(bookedMinutes, actualMinutes, granularityMinutes int32) int32 {
	billed := bookedMinutes
	if actualMinutes > 0 && actualMinutes < billed {
		billed = actualMinutes
	}
	if granularityMinutes <= 0 {
		return billed
	}
	if rem := billed % granularityMinutes; rem != 0 {
		billed += granularityMinutes - rem
	}
	// Rounding up never bills beyond the window the customer reserved.
	if billed > bookedMinutes {
		billed = bookedMinutes
	}
	return billed
}

// BillAmount converts an hourly price into the charge for billedMinutes,
// half-up to two decimal places.
func BillAmount(pricePerHour decimal.Decimal, billedMinutes int32) decimal.Decimal {
	return pricePerHour.
		Mul(decimal.NewFromInt32(billedMinutes)).
		Div(sixty).
		Round(2)
}

// CommissionAmount is the platform's cut of a settled total.
func CommissionAmount(total decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	return total.Mul(rate).Round(2)
}
