package settlement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeSplitTenPercent(t *testing.T) {
	p := Policy{CommissionRate: dec("0.10")}

	split := p.ComputeSplit(dec("60"))

	assert.True(t, split.Commission.Equal(dec("6")))
	assert.True(t, split.GamerNet.Equal(dec("54")))
	assert.True(t, split.GamerNet.Add(split.Commission).Equal(split.Total))
}

func TestComputeSplitSumsExactlyUnderRounding(t *testing.T) {
	p := Policy{CommissionRate: dec("0.10")}

	// 33.33 * 0.10 rounds to 3.33; the gamer's net must absorb the remainder
	// so the split always sums to the total.
	split := p.ComputeSplit(dec("33.33"))

	assert.True(t, split.Commission.Equal(dec("3.33")))
	assert.True(t, split.GamerNet.Equal(dec("30.00")))
	assert.True(t, split.GamerNet.Add(split.Commission).Equal(split.Total))
}

func TestComputeSplitZeroCommission(t *testing.T) {
	p := Policy{CommissionRate: decimal.Zero}

	split := p.ComputeSplit(dec("45"))

	assert.True(t, split.Commission.IsZero())
	assert.True(t, split.GamerNet.Equal(dec("45")))
}

func TestLateCancelFee(t *testing.T) {
	p := Policy{LateCancelFeeRate: dec("0.25")}

	assert.True(t, p.LateCancelFee(dec("60")).Equal(dec("15")))

	free := Policy{LateCancelFeeRate: decimal.Zero}
	assert.True(t, free.LateCancelFee(dec("60")).IsZero())
}
