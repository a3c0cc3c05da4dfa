package settlement

import (
	"context"
	"database/sql"
	"fmt"

	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/monitoring/logging"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/wallet"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Operation kinds. Together with the order id they form the idempotency
// key: external callbacks and client retries may replay any operation, and
// only the first application may move money.
const (
	OpReserve  = "reserve"
	OpFinalize = "finalize"
	OpReverse  = "reverse"
)

const opApplied = "applied"

// Ticket identifies the order being settled and the parties involved.
type Ticket struct {
	OrderID    uuid.UUID
	CustomerID int64
	GamerID    int64
	Reserved   decimal.Decimal
}

// Coordinator drives the two-phase movement of funds around an order:
// reserve on confirmation, finalize on completion, reverse on
// cancellation. Every method runs inside the caller's transaction so the
// wallet mutations commit or roll back together with the order row.
type Coordinator struct {
	wallets *wallet.WalletService
	logger  *logging.Logger
	policy  Policy
}

func NewCoordinator(wallets *wallet.WalletService, logger *logging.Logger, policy Policy) *Coordinator {
	return &Coordinator{
		wallets: wallets,
		logger:  logger,
		policy:  policy,
	}
}

func (c *Coordinator) Policy() Policy {
	return c.policy
}

// claim records the operation key. A second claim for the same key reports
// alreadyApplied, which turns the whole call into a no-op.
func (c *Coordinator) claim(ctx context.Context, q *db.Queries, orderID uuid.UUID, kind string) (alreadyApplied bool, err error) {
	inserted, err := q.InsertSettlementOperation(ctx, db.InsertSettlementOperationParams{
		OrderID: orderID,
		Kind:    kind,
		Status:  opApplied,
	})
	if err != nil {
		return false, err
	}
	return inserted == 0, nil
}

func (c *Coordinator) applied(ctx context.Context, q *db.Queries, orderID uuid.UUID, kind string) (bool, error) {
	_, err := q.GetSettlementOperation(ctx, db.GetSettlementOperationParams{
		OrderID: orderID,
		Kind:    kind,
	})
	if err == sql.ErrNoRows {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

// ReserveTx freezes the order total in the customer's wallet. An
// insufficient-funds failure is returned unwrapped so the order service can
// abort the confirmation.
func (c *Coordinator) ReserveTx(ctx context.Context, q *db.Queries, t Ticket) error {
	replay, err := c.claim(ctx, q, t.OrderID, OpReserve)
	if err != nil {
		return err
	}
	if replay {
		return nil
	}

	_, err = c.wallets.ApplyTx(ctx, q, wallet.Entry{
		UserID:      t.CustomerID,
		Type:        wallet.TypeFreeze,
		Amount:      t.Reserved,
		Category:    wallet.CategoryOrderPayment,
		Description: fmt.Sprintf("reserve for order %s", t.OrderID),
		RelatedID:   uuid.NullUUID{UUID: t.OrderID, Valid: true},
	})
	return err
}

// FinalizeTx converts the reservation into the final transfer: the
// customer's freeze is released and spent, the gamer is paid net of
// commission, and the platform account receives the commission. All four
// ledger entries land in the caller's transaction or none do.
func (c *Coordinator) FinalizeTx(ctx context.Context, q *db.Queries, t Ticket, charged decimal.Decimal) error {
	if reversed, err := c.applied(ctx, q, t.OrderID, OpReverse); err != nil {
		return err
	} else if reversed {
		return ErrAlreadyReversed
	}
	if reserved, err := c.applied(ctx, q, t.OrderID, OpReserve); err != nil {
		return err
	} else if !reserved {
		return ErrNotReserved
	}

	replay, err := c.claim(ctx, q, t.OrderID, OpFinalize)
	if err != nil {
		return err
	}
	if replay {
		return nil
	}

	split := c.policy.ComputeSplit(charged)
	related := uuid.NullUUID{UUID: t.OrderID, Valid: true}

	if _, err := c.wallets.ApplyTx(ctx, q, wallet.Entry{
		UserID:      t.CustomerID,
		Type:        wallet.TypeUnfreeze,
		Amount:      t.Reserved,
		Category:    wallet.CategoryOrderPayment,
		Description: fmt.Sprintf("release reserve for order %s", t.OrderID),
		RelatedID:   related,
	}); err != nil {
		return err
	}

	if _, err := c.wallets.ApplyTx(ctx, q, wallet.Entry{
		UserID:      t.CustomerID,
		Type:        wallet.TypeExpense,
		Amount:      split.Total,
		Category:    wallet.CategoryOrderPayment,
		Description: fmt.Sprintf("payment for order %s", t.OrderID),
		RelatedID:   related,
	}); err != nil {
		return err
	}

	if _, err := c.wallets.ApplyTx(ctx, q, wallet.Entry{
		UserID:      t.GamerID,
		Type:        wallet.TypeIncome,
		Amount:      split.GamerNet,
		Category:    wallet.CategoryOrderIncome,
		Description: fmt.Sprintf("earnings for order %s", t.OrderID),
		RelatedID:   related,
	}); err != nil {
		return err
	}

	if split.Commission.IsPositive() {
		if _, err := c.wallets.ApplyTx(ctx, q, wallet.Entry{
			UserID:      c.policy.PlatformAccountID,
			Type:        wallet.TypeIncome,
			Amount:      split.Commission,
			Category:    wallet.CategoryCommission,
			Description: fmt.Sprintf("commission for order %s", t.OrderID),
			RelatedID:   related,
		}); err != nil {
			return err
		}
	}

	return nil
}

// ReverseTx undoes the reservation. A zero fee is a full refund; a positive
// fee charges the customer that portion and settles it like a completed
// order, so late cancellations still pay the gamer.
func (c *Coordinator) ReverseTx(ctx context.Context, q *db.Queries, t Ticket, fee decimal.Decimal) error {
	if finalized, err := c.applied(ctx, q, t.OrderID, OpFinalize); err != nil {
		return err
	} else if finalized {
		return ErrAlreadyFinalized
	}
	if reserved, err := c.applied(ctx, q, t.OrderID, OpReserve); err != nil {
		return err
	} else if !reserved {
		return ErrNotReserved
	}

	replay, err := c.claim(ctx, q, t.OrderID, OpReverse)
	if err != nil {
		return err
	}
	if replay {
		return nil
	}

	related := uuid.NullUUID{UUID: t.OrderID, Valid: true}

	if _, err := c.wallets.ApplyTx(ctx, q, wallet.Entry{
		UserID:      t.CustomerID,
		Type:        wallet.TypeUnfreeze,
		Amount:      t.Reserved,
		Category:    wallet.CategoryRefund,
		Description: fmt.Sprintf("refund reserve for order %s", t.OrderID),
		RelatedID:   related,
	}); err != nil {
		return err
	}

	if !fee.IsPositive() {
		return nil
	}

	split := c.policy.ComputeSplit(fee)

	if _, err := c.wallets.ApplyTx(ctx, q, wallet.Entry{
		UserID:      t.CustomerID,
		Type:        wallet.TypeExpense,
		Amount:      split.Total,
		Category:    wallet.CategoryOrderPayment,
		Description: fmt.Sprintf("late cancellation fee for order %s", t.OrderID),
		RelatedID:   related,
	}); err != nil {
		return err
	}

	if _, err := c.wallets.ApplyTx(ctx, q, wallet.Entry{
		UserID:      t.GamerID,
		Type:        wallet.TypeIncome,
		Amount:      split.GamerNet,
		Category:    wallet.CategoryOrderIncome,
		Description: fmt.Sprintf("late cancellation compensation for order %s", t.OrderID),
		RelatedID:   related,
	}); err != nil {
		return err
	}

	if split.Commission.IsPositive() {
		if _, err := c.wallets.ApplyTx(ctx, q, wallet.Entry{
			UserID:      c.policy.PlatformAccountID,
			Type:        wallet.TypeIncome,
			Amount:      split.Commission,
			Category:    wallet.CategoryCommission,
			Description: fmt.Sprintf("commission for order %s", t.OrderID),
			RelatedID:   related,
		}); err != nil {
			return err
		}
	}

	return nil
}
