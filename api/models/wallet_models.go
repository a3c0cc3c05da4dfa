package models

import (
	"time"

	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/wallet"
	"github.com/google/uuid"
)

type WalletResponse struct {
	UserID       int64  `json:"user_id"`
	Balance      string `json:"balance"`
	FrozenAmount string `json:"frozen_amount"`
	Available    string `json:"available"`
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	SpentToday   string `json:"spent_today,omitempty"`
}

func ToWalletResponse(w *wallet.WalletModel) WalletResponse {
	return WalletResponse{
		UserID:       w.UserID,
		Balance:      w.Balance.String(),
		FrozenAmount: w.FrozenAmount.String(),
		Available:    w.Available().String(),
		TotalIncome:  w.TotalIncome.String(),
		TotalExpense: w.TotalExpense.String(),
	}
}

type TransactionResponse struct {
	ID           int64      `json:"id"`
	Type         string     `json:"type"`
	Amount       string     `json:"amount"`
	BalanceAfter string     `json:"balance_after"`
	Category     string     `json:"category"`
	Description  string     `json:"description,omitempty"`
	RelatedID    *uuid.UUID `json:"related_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToTransactionResponse(t *db.WalletTransaction) TransactionResponse {
	resp := TransactionResponse{
		ID:           t.ID,
		Type:         t.Type,
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Category:     t.Category,
		Description:  t.Description.String,
		CreatedAt:    t.CreatedAt,
	}
	if t.RelatedID.Valid {
		resp.RelatedID = &t.RelatedID.UUID
	}
	return resp
}

func ToTransactionCollectionResponse(transactions []db.WalletTransaction) []TransactionResponse {
	collection := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		collection = append(collection, ToTransactionResponse(&transactions[i]))
	}
	return collection
}

type ReconcileResponse struct {
	Balance    string `json:"balance"`
	Reconciled bool   `json:"reconciled"`
}

func ToReconcileResponse(r *wallet.ReconcileResult) ReconcileResponse {
	return ReconcileResponse{
		Balance:    r.Balance.String(),
		Reconciled: r.Reconciled,
	}
}
