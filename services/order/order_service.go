package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/monitoring/logging"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/settlement"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/wallet"
	"github.com/DeltaPlay/DeltaPlay-Backend/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService owns the order lifecycle. Every state change happens inside
// a store transaction with the order row locked, so concurrent actions on
// the same order serialize on the row and the status guard in
// UpdateOrderState catches anything that slipped past the lock.
type OrderService struct {
	store        *db.Store
	settlements  *settlement.Coordinator
	orderNumbers *utils.OrderNumberGenerator
	logger       *logging.Logger
	granularity  int32
	cancelGrace  time.Duration
}

func NewOrderService(store *db.Store, settlements *settlement.Coordinator, orderNumbers *utils.OrderNumberGenerator, logger *logging.Logger, config *utils.Config) *OrderService {
	return &OrderService{
		store:        store,
		settlements:  settlements,
		orderNumbers: orderNumbers,
		logger:       logger,
		granularity:  int32(config.BillingGranularity),
		cancelGrace:  time.Duration(config.CancelGraceMinutes) * time.Minute,
	}
}

type CreateOrderInput struct {
	CustomerID      int64
	ServiceID       uuid.UUID
	DurationMinutes int32
	ScheduledAt     time.Time
	Requirements    string
}

// CreateOrder books a service for a time window. The booking runs at
// serializable isolation so two customers racing for the same gamer cannot
// both pass the overlap check; the loser's serialization failure surfaces
// as a booking conflict.
func (o *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (db.Order, error) {
	if input.DurationMinutes <= 0 {
		return db.Order{}, fmt.Errorf("%w: duration must be positive", ErrValidationFailed)
	}
	if input.ScheduledAt.Before(time.Now()) {
		return db.Order{}, fmt.Errorf("%w: scheduled time is in the past", ErrValidationFailed)
	}

	var created db.Order
	err := o.store.ExecSerializableTx(ctx, func(q *db.Queries) error {
		service, err := q.GetGamerService(ctx, input.ServiceID)
		if err == sql.ErrNoRows {
			return ErrServiceNotFound
		} else if err != nil {
			return err
		}
		if !service.IsActive {
			return ErrServiceNotFound
		}
		if service.GamerID == input.CustomerID {
			return fmt.Errorf("%w: cannot book your own service", ErrValidationFailed)
		}

		profile, err := q.GetGamerProfile(ctx, service.GamerID)
		if err != nil {
			return err
		}
		if !profile.IsAcceptingOrders {
			return fmt.Errorf("%w: gamer is not accepting orders", ErrValidationFailed)
		}
		if input.DurationMinutes < profile.MinOrderDuration ||
			(profile.MaxOrderDuration > 0 && input.DurationMinutes > profile.MaxOrderDuration) {
			return fmt.Errorf("%w: duration outside the gamer's accepted range", ErrValidationFailed)
		}

		windowEnd := input.ScheduledAt.Add(time.Duration(input.DurationMinutes) * time.Minute)
		overlapping, err := q.CountOverlappingOrders(ctx, db.CountOverlappingOrdersParams{
			GamerID:     service.GamerID,
			WindowStart: input.ScheduledAt,
			WindowEnd:   windowEnd,
		})
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrBookingConflict
		}

		price, err := decimal.NewFromString(service.Price)
		if err != nil {
			return fmt.Errorf("could not parse service price: %w", err)
		}
		total := BillAmount(price, input.DurationMinutes)
		commission := CommissionAmount(total, o.settlements.Policy().CommissionRate)

		sequence, err := q.NextOrderSequence(ctx)
		if err != nil {
			return err
		}
		number, err := o.orderNumbers.Generate(sequence)
		if err != nil {
			return err
		}

		created, err = q.CreateOrder(ctx, db.CreateOrderParams{
			ID:              uuid.New(),
			Sequence:        sequence,
			OrderNumber:     number,
			CustomerID:      input.CustomerID,
			GamerID:         service.GamerID,
			ServiceID:       service.ID,
			Status:          StatusPending,
			PaymentStatus:   PaymentPending,
			DurationMinutes: input.DurationMinutes,
			Price:           price.String(),
			TotalAmount:     total.String(),
			Commission:      commission.String(),
			ScheduledAt:     input.ScheduledAt,
			Requirements:    utils.ToSQLNullString(input.Requirements),
		})
		return err
	})
	if db.IsSerializationFailure(err) {
		return db.Order{}, ErrBookingConflict
	}
	if err != nil {
		return db.Order{}, err
	}

	o.logger.Info(fmt.Sprintf("order %v created for gamer %v", created.OrderNumber, created.GamerID))
	return created, nil
}

// Accept lets the gamer take a pending order.
func (o *OrderService) Accept(ctx context.Context, orderID uuid.UUID, gamerID int64) (db.Order, error) {
	return o.mutate(ctx, orderID, func(q *db.Queries, ord db.Order) (db.UpdateOrderStateParams, error) {
		if ord.GamerID != gamerID {
			return db.UpdateOrderStateParams{}, ErrNotParticipant
		}
		if !CanTransition(ord.Status, StatusAccepted) {
			return db.UpdateOrderStateParams{}, ErrInvalidTransition
		}
		arg := stateParams(ord, StatusAccepted)
		return arg, nil
	})
}

// Confirm reserves the order total from the customer's wallet and moves the
// order to confirmed. If the reservation fails for lack of funds the whole
// transaction rolls back and the order is cancelled in a follow-up
// transaction, so no half-applied reservation can ever commit.
func (o *OrderService) Confirm(ctx context.Context, orderID uuid.UUID, customerID int64) (db.Order, error) {
	confirmed, err := o.mutate(ctx, orderID, func(q *db.Queries, ord db.Order) (db.UpdateOrderStateParams, error) {
		if ord.CustomerID != customerID {
			return db.UpdateOrderStateParams{}, ErrNotParticipant
		}
		if !CanTransition(ord.Status, StatusConfirmed) {
			return db.UpdateOrderStateParams{}, ErrInvalidTransition
		}

		ticket, err := o.ticket(ord)
		if err != nil {
			return db.UpdateOrderStateParams{}, err
		}
		if err := o.settlements.ReserveTx(ctx, q, ticket); err != nil {
			return db.UpdateOrderStateParams{}, err
		}

		arg := stateParams(ord, StatusConfirmed)
		arg.PaymentStatus = PaymentPaid
		return arg, nil
	})
	if errors.Is(err, wallet.ErrInsufficientFunds) {
		o.cancelUnpaid(ctx, orderID)
		return db.Order{}, ErrPaymentFailed
	}
	return confirmed, err
}

// cancelUnpaid cancels an order whose payment reservation failed. Runs in
// its own transaction because the confirming transaction already rolled
// back.
func (o *OrderService) cancelUnpaid(ctx context.Context, orderID uuid.UUID) {
	_, err := o.mutate(ctx, orderID, func(q *db.Queries, ord db.Order) (db.UpdateOrderStateParams, error) {
		if !CanTransition(ord.Status, StatusCancelled) {
			return db.UpdateOrderStateParams{}, ErrInvalidTransition
		}
		arg := stateParams(ord, StatusCancelled)
		arg.CancellationReason = utils.ToSQLNullString(ReasonPaymentFailed)
		return arg, nil
	})
	if err != nil {
		o.logger.Error(fmt.Sprintf("could not cancel unpaid order %v: %v", orderID, err))
	}
}

// Start marks the session as running.
func (o *OrderService) Start(ctx context.Context, orderID uuid.UUID, gamerID int64) (db.Order, error) {
	return o.mutate(ctx, orderID, func(q *db.Queries, ord db.Order) (db.UpdateOrderStateParams, error) {
		if ord.GamerID != gamerID {
			return db.UpdateOrderStateParams{}, ErrNotParticipant
		}
		if !CanTransition(ord.Status, StatusInProgress) {
			return db.UpdateOrderStateParams{}, ErrInvalidTransition
		}
		arg := stateParams(ord, StatusInProgress)
		arg.StartedAt = sql.NullTime{Time: time.Now(), Valid: true}
		return arg, nil
	})
}

// Complete ends the session, bills the customer for the time actually
// played and settles the funds. Over-runs never bill beyond the booked
// window; short sessions bill in granularity steps and the unspent part of
// the reservation flows back to the customer during finalization.
func (o *OrderService) Complete(ctx context.Context, orderID uuid.UUID, gamerID int64) (db.Order, error) {
	return o.mutate(ctx, orderID, func(q *db.Queries, ord db.Order) (db.UpdateOrderStateParams, error) {
		if ord.GamerID != gamerID {
			return db.UpdateOrderStateParams{}, ErrNotParticipant
		}
		if !CanTransition(ord.Status, StatusCompleted) {
			return db.UpdateOrderStateParams{}, ErrInvalidTransition
		}
		if !ord.StartedAt.Valid {
			return db.UpdateOrderStateParams{}, fmt.Errorf("%w: order has no session start time", ErrInvalidTransition)
		}

		now := time.Now()
		actual := ActualMinutes(now.Sub(ord.StartedAt.Time))
		billed := BilledMinutes(ord.DurationMinutes, actual, o.granularity)

		price, err := decimal.NewFromString(ord.Price)
		if err != nil {
			return db.UpdateOrderStateParams{}, fmt.Errorf("could not parse order price: %w", err)
		}
		charged := BillAmount(price, billed)
		commission := CommissionAmount(charged, o.settlements.Policy().CommissionRate)

		ticket, err := o.ticket(ord)
		if err != nil {
			return db.UpdateOrderStateParams{}, err
		}
		if err := o.settlements.FinalizeTx(ctx, q, ticket, charged); err != nil {
			return db.UpdateOrderStateParams{}, err
		}

		arg := stateParams(ord, StatusCompleted)
		arg.ActualDurationMinutes = sql.NullInt32{Int32: actual, Valid: true}
		arg.TotalAmount = charged.String()
		arg.Commission = commission.String()
		arg.EndedAt = sql.NullTime{Time: now, Valid: true}
		return arg, nil
	})
}

// Cancel tears an order down. Unconfirmed orders cancel freely; confirmed
// ones get a full refund of the reservation; a running session may only be
// cancelled within the grace window after its start and the policy fee, if
// any, still compensates the gamer.
func (o *OrderService) Cancel(ctx context.Context, orderID uuid.UUID, userID int64, reason string) (db.Order, error) {
	return o.mutate(ctx, orderID, func(q *db.Queries, ord db.Order) (db.UpdateOrderStateParams, error) {
		if ord.CustomerID != userID && ord.GamerID != userID {
			return db.UpdateOrderStateParams{}, ErrNotParticipant
		}
		if !CanTransition(ord.Status, StatusCancelled) {
			return db.UpdateOrderStateParams{}, ErrInvalidTransition
		}

		arg := stateParams(ord, StatusCancelled)
		arg.CancellationReason = utils.ToSQLNullString(reason)

		switch ord.Status {
		case StatusPending, StatusAccepted:
			// Nothing reserved yet.
			return arg, nil
		case StatusConfirmed:
			ticket, err := o.ticket(ord)
			if err != nil {
				return db.UpdateOrderStateParams{}, err
			}
			if err := o.settlements.ReverseTx(ctx, q, ticket, decimal.Zero); err != nil {
				return db.UpdateOrderStateParams{}, err
			}
			arg.PaymentStatus = PaymentRefunded
			return arg, nil
		case StatusInProgress:
			if ord.StartedAt.Valid && time.Since(ord.StartedAt.Time) > o.cancelGrace {
				return db.UpdateOrderStateParams{}, fmt.Errorf("%w: session is past the cancellation window", ErrValidationFailed)
			}
			ticket, err := o.ticket(ord)
			if err != nil {
				return db.UpdateOrderStateParams{}, err
			}
			fee := o.settlements.Policy().LateCancelFee(ticket.Reserved)
			if err := o.settlements.ReverseTx(ctx, q, ticket, fee); err != nil {
				return db.UpdateOrderStateParams{}, err
			}
			if fee.IsPositive() {
				arg.PaymentStatus = PaymentPartialRefund
			} else {
				arg.PaymentStatus = PaymentRefunded
			}
			return arg, nil
		default:
			return db.UpdateOrderStateParams{}, ErrInvalidTransition
		}
	})
}

// Dispute freezes the lifecycle until an operator resolves it. Funds stay
// where the last settlement operation left them.
func (o *OrderService) Dispute(ctx context.Context, orderID uuid.UUID, userID int64, reason string) (db.Order, error) {
	disputed, err := o.mutate(ctx, orderID, func(q *db.Queries, ord db.Order) (db.UpdateOrderStateParams, error) {
		if ord.CustomerID != userID && ord.GamerID != userID {
			return db.UpdateOrderStateParams{}, ErrNotParticipant
		}
		if !CanTransition(ord.Status, StatusDisputed) {
			return db.UpdateOrderStateParams{}, ErrInvalidTransition
		}
		return stateParams(ord, StatusDisputed), nil
	})
	if err == nil {
		o.logger.Warning(fmt.Sprintf("order %v disputed by user %v: %v", orderID, userID, reason))
	}
	return disputed, err
}

// Resolve is the operator verdict on a disputed order. Resolving as
// completed settles the funds as if the session finished normally;
// resolving as cancelled refunds the reservation. The settlement journal
// makes the verdict safe to apply over whatever already happened.
func (o *OrderService) Resolve(ctx context.Context, orderID uuid.UUID, outcome string) (db.Order, error) {
	if outcome != StatusCompleted && outcome != StatusCancelled {
		return db.Order{}, fmt.Errorf("%w: resolution must be completed or cancelled", ErrValidationFailed)
	}
	return o.mutate(ctx, orderID, func(q *db.Queries, ord db.Order) (db.UpdateOrderStateParams, error) {
		if !CanTransition(ord.Status, outcome) {
			return db.UpdateOrderStateParams{}, ErrInvalidTransition
		}

		ticket, err := o.ticket(ord)
		if err != nil {
			return db.UpdateOrderStateParams{}, err
		}

		arg := stateParams(ord, outcome)
		if outcome == StatusCompleted {
			charged, err := decimal.NewFromString(ord.TotalAmount)
			if err != nil {
				return db.UpdateOrderStateParams{}, fmt.Errorf("could not parse order total: %w", err)
			}
			err = o.settlements.FinalizeTx(ctx, q, ticket, charged)
			if err != nil && !errors.Is(err, settlement.ErrNotReserved) {
				return db.UpdateOrderStateParams{}, err
			}
			arg.PaymentStatus = PaymentPaid
			if !arg.EndedAt.Valid {
				arg.EndedAt = sql.NullTime{Time: time.Now(), Valid: true}
			}
		} else {
			err = o.settlements.ReverseTx(ctx, q, ticket, decimal.Zero)
			if err != nil && !errors.Is(err, settlement.ErrNotReserved) {
				return db.UpdateOrderStateParams{}, err
			}
			if err == nil {
				arg.PaymentStatus = PaymentRefunded
			}
			arg.CancellationReason = utils.ToSQLNullString("resolved_cancelled")
		}
		return arg, nil
	})
}

func (o *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (db.Order, error) {
	ord, err := o.store.GetOrder(ctx, orderID)
	if err == sql.ErrNoRows {
		return db.Order{}, ErrOrderNotFound
	}
	return ord, err
}

// ListOrders returns a participant's orders newest first, optionally
// filtered by status.
func (o *OrderService) ListOrders(ctx context.Context, userID int64, status string, page, pageSize int32) ([]db.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	orders, err := o.store.ListOrdersByParticipant(ctx, db.ListOrdersByParticipantParams{
		UserID: userID,
		Status: status,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		return nil, 0, err
	}
	total, err := o.store.CountOrdersByParticipant(ctx, db.CountOrdersByParticipantParams{
		UserID: userID,
		Status: status,
	})
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// mutate runs fn against the locked order row and applies the state update
// it returns. A zero-row update means another writer beat us to the
// transition.
func (o *OrderService) mutate(ctx context.Context, orderID uuid.UUID, fn func(q *db.Queries, ord db.Order) (db.UpdateOrderStateParams, error)) (db.Order, error) {
	var result db.Order
	err := o.store.ExecTx(ctx, func(q *db.Queries) error {
		ord, err := q.GetOrderForUpdate(ctx, orderID)
		if err == sql.ErrNoRows {
			return ErrOrderNotFound
		} else if err != nil {
			return err
		}

		arg, err := fn(q, ord)
		if err != nil {
			return err
		}

		rows, err := q.UpdateOrderState(ctx, arg)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrInvalidTransition
		}

		result, err = q.GetOrder(ctx, orderID)
		return err
	})
	if err != nil {
		return db.Order{}, err
	}
	return result, nil
}

func (o *OrderService) ticket(ord db.Order) (settlement.Ticket, error) {
	reserved, err := decimal.NewFromString(ord.TotalAmount)
	if err != nil {
		return settlement.Ticket{}, fmt.Errorf("could not parse order total: %w", err)
	}
	return settlement.Ticket{
		OrderID:    ord.ID,
		CustomerID: ord.CustomerID,
		GamerID:    ord.GamerID,
		Reserved:   reserved,
	}, nil
}

func stateParams(ord db.Order, to string) db.UpdateOrderStateParams {
	return db.UpdateOrderStateParams{
		ID:                    ord.ID,
		FromStatus:            ord.Status,
		Status:                to,
		PaymentStatus:         ord.PaymentStatus,
		ActualDurationMinutes: ord.ActualDurationMinutes,
		TotalAmount:           ord.TotalAmount,
		Commission:            ord.Commission,
		StartedAt:             ord.StartedAt,
		EndedAt:               ord.EndedAt,
		CancellationReason:    ord.CancellationReason,
		UpdatedAt:             time.Now(),
	}
}
