package wallet

import (
	"fmt"
	"time"

	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types. Freeze/unfreeze move funds in and out of the reserved
// portion without changing ownership; income/expense change the balance.
const (
	TypeIncome   = "income"
	TypeExpense  = "expense"
	TypeFreeze   = "freeze"
	TypeUnfreeze = "unfreeze"
)

const (
	CategoryRecharge     = "recharge"
	CategoryOrderPayment = "order_payment"
	CategoryOrderIncome  = "order_income"
	CategoryRefund       = "refund"
	CategoryWithdraw     = "withdraw"
	CategoryCommission   = "commission"
	CategoryBonus        = "bonus"
)

// Entry is a requested ledger mutation for one user.
type Entry struct {
	UserID      int64
	Type        string
	Amount      decimal.Decimal
	Category    string
	Description string
	RelatedID   uuid.NullUUID
}

type WalletModel struct {
	UserID       int64           `json:"user_id"`
	Balance      decimal.Decimal `json:"balance"`
	FrozenAmount decimal.Decimal `json:"frozen_amount"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	WritesFrozen bool            `json:"writes_frozen"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Available is the portion of the balance not reserved against orders.
func (w WalletModel) Available() decimal.Decimal {
	return w.Balance.Sub(w.FrozenAmount)
}

type ReconcileResult struct {
	Balance    decimal.Decimal `json:"balance"`
	Reconciled bool            `json:"reconciled"`
}

func ToWalletModel(w db.Wallet) (*WalletModel, error) {
	balance, err := decimal.NewFromString(w.Balance)
	if err != nil {
		return nil, fmt.Errorf("corrupt wallet balance for user %d: %w", w.UserID, err)
	}
	frozen, err := decimal.NewFromString(w.FrozenAmount)
	if err != nil {
		return nil, fmt.Errorf("corrupt frozen amount for user %d: %w", w.UserID, err)
	}
	income, err := decimal.NewFromString(w.TotalIncome)
	if err != nil {
		return nil, fmt.Errorf("corrupt total income for user %d: %w", w.UserID, err)
	}
	expense, err := decimal.NewFromString(w.TotalExpense)
	if err != nil {
		return nil, fmt.Errorf("corrupt total expense for user %d: %w", w.UserID, err)
	}

	return &WalletModel{
		UserID:       w.UserID,
		Balance:      balance,
		FrozenAmount: frozen,
		TotalIncome:  income,
		TotalExpense: expense,
		WritesFrozen: w.WritesFrozen,
		UpdatedAt:    w.UpdatedAt,
	}, nil
}
