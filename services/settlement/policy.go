package settlement

import "github.com/shopspring/decimal"

// Policy carries the platform's settlement parameters. Nothing in here is
// hard-coded: commission and late-cancellation fees come from config.
type Policy struct {
	CommissionRate    decimal.Decimal
	LateCancelFeeRate decimal.Decimal
	PlatformAccountID int64
}

// Split is the three-way division of a settled amount.
type Split struct {
	Total      decimal.Decimal
	GamerNet   decimal.Decimal
	Commission decimal.Decimal
}

// ComputeSplit divides a charged total between the gamer and the platform.
// The gamer's net is derived by subtraction so the three amounts always sum
// exactly, whatever the rounding of the commission.
func (p Policy) ComputeSplit(total decimal.Decimal) Split {
	commission := total.Mul(p.CommissionRate).Round(2)
	return Split{
		Total:      total,
		GamerNet:   total.Sub(commission),
		Commission: commission,
	}
}

// LateCancelFee is the portion of the reserved amount charged when a
// customer cancels a session that is already running.
func (p Policy) LateCancelFee(reserved decimal.Decimal) decimal.Decimal {
	return reserved.Mul(p.LateCancelFeeRate).Round(2)
}
