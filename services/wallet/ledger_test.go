package wallet

import (
	"testing"

	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func freshWallet() WalletModel {
	return WalletModel{
		UserID:       1,
		Balance:      decimal.Zero,
		FrozenAmount: decimal.Zero,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
}

func TestApplyEntryIncomeAndExpense(t *testing.T) {
	w := freshWallet()

	w, err := applyEntry(w, Entry{UserID: 1, Type: TypeIncome, Amount: dec("100"), Category: CategoryRecharge})
	require.NoError(t, err)
	assert.True(t, w.Balance.Equal(dec("100")))
	assert.True(t, w.TotalIncome.Equal(dec("100")))

	w, err = applyEntry(w, Entry{UserID: 1, Type: TypeExpense, Amount: dec("40"), Category: CategoryWithdraw})
	require.NoError(t, err)
	assert.True(t, w.Balance.Equal(dec("60")))
	assert.True(t, w.TotalExpense.Equal(dec("40")))
	assert.True(t, w.Balance.Equal(w.TotalIncome.Sub(w.TotalExpense)))
}

func TestApplyEntryRejectsOverdraft(t *testing.T) {
	w := freshWallet()
	w, err := applyEntry(w, Entry{UserID: 1, Type: TypeIncome, Amount: dec("50"), Category: CategoryRecharge})
	require.NoError(t, err)

	_, err = applyEntry(w, Entry{UserID: 1, Type: TypeExpense, Amount: dec("50.01"), Category: CategoryWithdraw})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestApplyEntryFreezeReservesAvailableFunds(t *testing.T) {
	w := freshWallet()
	w, err := applyEntry(w, Entry{UserID: 1, Type: TypeIncome, Amount: dec("100"), Category: CategoryRecharge})
	require.NoError(t, err)

	w, err = applyEntry(w, Entry{UserID: 1, Type: TypeFreeze, Amount: dec("70"), Category: CategoryOrderPayment})
	require.NoError(t, err)
	assert.True(t, w.FrozenAmount.Equal(dec("70")))
	assert.True(t, w.Balance.Equal(dec("100")), "freeze must not move the balance")

	// Only 30 remains available; spending against the frozen portion fails.
	_, err = applyEntry(w, Entry{UserID: 1, Type: TypeExpense, Amount: dec("31"), Category: CategoryWithdraw})
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = applyEntry(w, Entry{UserID: 1, Type: TypeFreeze, Amount: dec("31"), Category: CategoryOrderPayment})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestApplyEntryUnfreezeCannotExceedFrozen(t *testing.T) {
	w := freshWallet()
	w, err := applyEntry(w, Entry{UserID: 1, Type: TypeIncome, Amount: dec("100"), Category: CategoryRecharge})
	require.NoError(t, err)
	w, err = applyEntry(w, Entry{UserID: 1, Type: TypeFreeze, Amount: dec("20"), Category: CategoryOrderPayment})
	require.NoError(t, err)

	_, err = applyEntry(w, Entry{UserID: 1, Type: TypeUnfreeze, Amount: dec("21"), Category: CategoryRefund})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	w, err = applyEntry(w, Entry{UserID: 1, Type: TypeUnfreeze, Amount: dec("20"), Category: CategoryRefund})
	require.NoError(t, err)
	assert.True(t, w.FrozenAmount.IsZero())
}

func TestApplyEntryRejectsNonPositiveAmounts(t *testing.T) {
	w := freshWallet()

	_, err := applyEntry(w, Entry{UserID: 1, Type: TypeIncome, Amount: decimal.Zero, Category: CategoryBonus})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = applyEntry(w, Entry{UserID: 1, Type: TypeIncome, Amount: dec("-5"), Category: CategoryBonus})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestApplyEntryRejectsUnknownType(t *testing.T) {
	_, err := applyEntry(freshWallet(), Entry{UserID: 1, Type: "teleport", Amount: dec("5")})
	assert.ErrorIs(t, err, ErrUnknownType)
}

func historyRow(id int64, txType, amount, after string) db.WalletTransaction {
	return db.WalletTransaction{
		ID:           id,
		UserID:       1,
		Type:         txType,
		Amount:       amount,
		BalanceAfter: after,
		Category:     CategoryRecharge,
	}
}

func TestFoldTransactionsMatchesAppliedSequence(t *testing.T) {
	history := []db.WalletTransaction{
		historyRow(1, TypeIncome, "100", "100"),
		historyRow(2, TypeFreeze, "60", "100"),
		historyRow(3, TypeUnfreeze, "60", "100"),
		historyRow(4, TypeExpense, "60", "40"),
	}

	folded, err := FoldTransactions(1, history)
	require.NoError(t, err)
	assert.True(t, folded.Balance.Equal(dec("40")))
	assert.True(t, folded.FrozenAmount.IsZero())
	assert.True(t, folded.TotalIncome.Equal(dec("100")))
	assert.True(t, folded.TotalExpense.Equal(dec("60")))
}

func TestFoldTransactionsDetectsBadSnapshot(t *testing.T) {
	history := []db.WalletTransaction{
		historyRow(1, TypeIncome, "100", "100"),
		historyRow(2, TypeExpense, "30", "80"), // snapshot lies: should be 70
	}

	_, err := FoldTransactions(1, history)
	assert.ErrorIs(t, err, ErrLedgerInconsistency)
}

func TestReconcilesComparesAllCachedFields(t *testing.T) {
	folded := WalletModel{
		Balance:      dec("40"),
		FrozenAmount: decimal.Zero,
		TotalIncome:  dec("100"),
		TotalExpense: dec("60"),
	}

	cached := folded
	assert.True(t, reconciles(cached, folded))

	cached.FrozenAmount = dec("5")
	assert.False(t, reconciles(cached, folded))
}
