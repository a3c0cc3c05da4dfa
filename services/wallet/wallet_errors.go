package wallet

import "fmt"

var (
	ErrWalletNotFound      = fmt.Errorf("wallet not found")
	ErrInsufficientFunds   = fmt.Errorf("insufficient funds")
	ErrInvalidAmount       = fmt.Errorf("transaction amount must be positive")
	ErrUnknownType         = fmt.Errorf("unknown transaction type")
	ErrWalletHalted        = fmt.Errorf("wallet is halted pending operator review")
	ErrLedgerInconsistency = fmt.Errorf("ledger does not reconcile with cached balance")
)

type WalletError struct {
	ErrorObj error
	UserID   int64
	Other    []error
}

func (w *WalletError) Error() string {
	return w.ErrorObj.Error()
}

func (w *WalletError) Unwrap() error {
	return w.ErrorObj
}

func (w *WalletError) ErrorOut() string {
	return fmt.Sprintf("%v: user %v", w.ErrorObj.Error(), w.UserID)
}

func NewWalletError(err error, userID int64, e ...error) *WalletError {
	return &WalletError{
		ErrorObj: err,
		UserID:   userID,
		Other:    e,
	}
}
