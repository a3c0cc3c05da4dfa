package wallet

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/monitoring/logging"
	"github.com/shopspring/decimal"
)

type WalletService struct {
	store  *db.Store
	logger *logging.Logger
}

func NewWalletService(store *db.Store, logger *logging.Logger) *WalletService {
	return &WalletService{
		store:  store,
		logger: logger,
	}
}

func (w *WalletService) GetWallet(ctx context.Context, userID int64) (*WalletModel, error) {
	db_wallet, err := w.store.GetWallet(ctx, userID)
	if err == sql.ErrNoRows {
		return nil, NewWalletError(ErrWalletNotFound, userID)
	} else if err != nil {
		return nil, err
	}
	return ToWalletModel(db_wallet)
}

func (w *WalletService) CreateWallet(ctx context.Context, q *db.Queries, userID int64) (*WalletModel, error) {
	db_wallet, err := q.CreateWallet(ctx, userID)
	if err == sql.ErrNoRows {
		// Conflict target hit: the wallet already exists.
		return w.GetWallet(ctx, userID)
	} else if err != nil {
		w.logger.Error(fmt.Sprintf("error creating wallet: %v", err))
		return nil, err
	}
	return ToWalletModel(db_wallet)
}

// ApplyTx validates and applies one ledger entry inside the caller's
// transaction. The wallet row is locked FOR UPDATE, which serializes all
// mutations per user while leaving other users untouched. Callers that do
// not already hold a transaction should use Apply.
func (w *WalletService) ApplyTx(ctx context.Context, q *db.Queries, e Entry) (*WalletModel, error) {
	db_wallet, err := q.GetWalletForUpdate(ctx, e.UserID)
	if err == sql.ErrNoRows {
		// The first credit provisions the wallet, provided the user exists.
		// Debits and freezes against a missing wallet stay an error.
		if e.Type != TypeIncome {
			return nil, NewWalletError(ErrWalletNotFound, e.UserID)
		}
		if _, err := q.GetUser(ctx, e.UserID); err == sql.ErrNoRows {
			return nil, NewWalletError(ErrWalletNotFound, e.UserID)
		} else if err != nil {
			return nil, err
		}
		if _, err := w.CreateWallet(ctx, q, e.UserID); err != nil {
			return nil, err
		}
		db_wallet, err = q.GetWalletForUpdate(ctx, e.UserID)
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if db_wallet.WritesFrozen {
		return nil, NewWalletError(ErrWalletHalted, e.UserID)
	}

	current, err := ToWalletModel(db_wallet)
	if err != nil {
		return nil, err
	}

	next, err := applyEntry(*current, e)
	if err != nil {
		return nil, NewWalletError(err, e.UserID)
	}

	if _, err := q.InsertWalletTransaction(ctx, db.InsertWalletTransactionParams{
		UserID:       e.UserID,
		Type:         e.Type,
		Amount:       e.Amount.String(),
		BalanceAfter: next.Balance.String(),
		Category:     e.Category,
		Description:  sql.NullString{String: e.Description, Valid: e.Description != ""},
		RelatedID:    e.RelatedID,
	}); err != nil {
		return nil, err
	}

	updated, err := q.UpdateWalletBalances(ctx, db.UpdateWalletBalancesParams{
		UserID:       e.UserID,
		Balance:      next.Balance.String(),
		FrozenAmount: next.FrozenAmount.String(),
		TotalIncome:  next.TotalIncome.String(),
		TotalExpense: next.TotalExpense.String(),
		UpdatedAt:    time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return ToWalletModel(updated)
}

// Apply runs ApplyTx in its own transaction.
func (w *WalletService) Apply(ctx context.Context, e Entry) (*WalletModel, error) {
	var result *WalletModel
	err := w.store.ExecTx(ctx, func(q *db.Queries) error {
		m, err := w.ApplyTx(ctx, q, e)
		if err != nil {
			return err
		}
		result = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Reconcile replays the user's full ledger and compares it with the cached
// wallet row. On a mismatch the wallet is halted for writes and the
// discrepancy is surfaced; it is never silently patched.
func (w *WalletService) Reconcile(ctx context.Context, userID int64) (*ReconcileResult, error) {
	var result *ReconcileResult

	err := w.store.ExecTx(ctx, func(q *db.Queries) error {
		db_wallet, err := q.GetWalletForUpdate(ctx, userID)
		if err == sql.ErrNoRows {
			return NewWalletError(ErrWalletNotFound, userID)
		} else if err != nil {
			return err
		}

		cached, err := ToWalletModel(db_wallet)
		if err != nil {
			return err
		}

		history, err := q.ListAllWalletTransactions(ctx, userID)
		if err != nil {
			return err
		}

		folded, foldErr := FoldTransactions(userID, history)
		ok := foldErr == nil && reconciles(*cached, folded)

		if !ok {
			w.logger.Error(fmt.Sprintf("ledger inconsistency for user %d: cached %s, replay %s (%v); halting wallet",
				userID, cached.Balance, folded.Balance, foldErr))
			if err := q.SetWalletWritesFrozen(ctx, db.SetWalletWritesFrozenParams{
				UserID:       userID,
				WritesFrozen: true,
				UpdatedAt:    time.Now(),
			}); err != nil {
				return err
			}
		}

		result = &ReconcileResult{
			Balance:    cached.Balance,
			Reconciled: ok,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Recharge credits external funds into the wallet. The gateway charge has
// already succeeded when this runs; the receipt reference goes into the
// ledger row description.
func (w *WalletService) Recharge(ctx context.Context, userID int64, amount decimal.Decimal, reference string) (*WalletModel, error) {
	return w.Apply(ctx, Entry{
		UserID:      userID,
		Type:        TypeIncome,
		Amount:      amount,
		Category:    CategoryRecharge,
		Description: reference,
	})
}

func (w *WalletService) Withdraw(ctx context.Context, userID int64, amount decimal.Decimal) (*WalletModel, error) {
	return w.Apply(ctx, Entry{
		UserID:   userID,
		Type:     TypeExpense,
		Amount:   amount,
		Category: CategoryWithdraw,
	})
}

func (w *WalletService) ListTransactions(ctx context.Context, userID int64, page, pageSize int) ([]db.WalletTransaction, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return w.store.ListWalletTransactions(ctx, db.ListWalletTransactionsParams{
		UserID: userID,
		Limit:  int32(pageSize),
		Offset: int32((page - 1) * pageSize),
	})
}

// ClearHalt lifts the write halt after an operator has resolved a surfaced
// inconsistency.
func (w *WalletService) ClearHalt(ctx context.Context, userID int64) error {
	return w.store.SetWalletWritesFrozen(ctx, db.SetWalletWritesFrozenParams{
		UserID:       userID,
		WritesFrozen: false,
		UpdatedAt:    time.Now(),
	})
}
