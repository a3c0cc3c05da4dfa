package wallet

import (
	"fmt"

	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	"github.com/shopspring/decimal"
)

// applyEntry computes the wallet state after one ledger entry. Pure: it
// never touches storage, so the invariants can be tested directly.
//
// Invariants enforced on the resulting state:
//
//	balance >= 0
//	frozenAmount <= balance
//	balance == totalIncome - totalExpense
func applyEntry(w WalletModel, e Entry) (WalletModel, error) {
	if !e.Amount.IsPositive() {
		return w, ErrInvalidAmount
	}

	next := w
	switch e.Type {
	case TypeIncome:
		next.Balance = w.Balance.Add(e.Amount)
		next.TotalIncome = w.TotalIncome.Add(e.Amount)
	case TypeExpense:
		if w.Available().LessThan(e.Amount) {
			return w, ErrInsufficientFunds
		}
		next.Balance = w.Balance.Sub(e.Amount)
		next.TotalExpense = w.TotalExpense.Add(e.Amount)
	case TypeFreeze:
		if w.Available().LessThan(e.Amount) {
			return w, ErrInsufficientFunds
		}
		next.FrozenAmount = w.FrozenAmount.Add(e.Amount)
	case TypeUnfreeze:
		if w.FrozenAmount.LessThan(e.Amount) {
			return w, fmt.Errorf("%w: unfreeze of %s exceeds frozen %s", ErrInvalidAmount, e.Amount, w.FrozenAmount)
		}
		next.FrozenAmount = w.FrozenAmount.Sub(e.Amount)
	default:
		return w, ErrUnknownType
	}

	if next.Balance.IsNegative() || next.FrozenAmount.GreaterThan(next.Balance) {
		return w, ErrInsufficientFunds
	}
	if !next.Balance.Equal(next.TotalIncome.Sub(next.TotalExpense)) {
		return w, ErrLedgerInconsistency
	}

	return next, nil
}

// FoldTransactions replays a user's full ledger history from zero. The
// cached wallet row must always equal this fold; Reconcile checks exactly
// that.
func FoldTransactions(userID int64, history []db.WalletTransaction) (WalletModel, error) {
	folded := WalletModel{
		UserID:       userID,
		Balance:      decimal.Zero,
		FrozenAmount: decimal.Zero,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, txn := range history {
		amount, err := decimal.NewFromString(txn.Amount)
		if err != nil {
			return folded, fmt.Errorf("corrupt ledger row %d: %w", txn.ID, err)
		}

		next, err := applyEntry(folded, Entry{
			UserID:   userID,
			Type:     txn.Type,
			Amount:   amount,
			Category: txn.Category,
		})
		if err != nil {
			return folded, fmt.Errorf("ledger row %d does not replay: %w", txn.ID, err)
		}

		recorded, err := decimal.NewFromString(txn.BalanceAfter)
		if err != nil {
			return folded, fmt.Errorf("corrupt balance snapshot on row %d: %w", txn.ID, err)
		}
		if !next.Balance.Equal(recorded) {
			return folded, fmt.Errorf("%w: row %d snapshot %s, replay %s",
				ErrLedgerInconsistency, txn.ID, recorded, next.Balance)
		}

		folded = next
	}

	return folded, nil
}

// reconciles reports whether the cached wallet row matches the fold.
func reconciles(cached WalletModel, folded WalletModel) bool {
	return cached.Balance.Equal(folded.Balance) &&
		cached.FrozenAmount.Equal(folded.FrozenAmount) &&
		cached.TotalIncome.Equal(folded.TotalIncome) &&
		cached.TotalExpense.Equal(folded.TotalExpense)
}
