package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/monitoring/logging"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/wallet"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var operationColumns = []string{"order_id", "kind", "status", "detail", "created_at"}

func newTestCoordinator(t *testing.T) (*Coordinator, *db.Queries, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	store := db.NewStore(conn)
	wallets := wallet.NewWalletService(store, logging.NewLogger())
	coordinator := NewCoordinator(wallets, logging.NewLogger(), Policy{
		CommissionRate:    decimal.RequireFromString("0.10"),
		LateCancelFeeRate: decimal.RequireFromString("0.20"),
		PlatformAccountID: 1,
	})
	return coordinator, db.New(conn), mock
}

func expectOperation(mock sqlmock.Sqlmock, orderID uuid.UUID, kind string) {
	mock.ExpectQuery("FROM settlement_operations").
		WithArgs(orderID, kind).
		WillReturnRows(sqlmock.NewRows(operationColumns).
			AddRow(orderID.String(), kind, "applied", nil, time.Now()))
}

func expectNoOperation(mock sqlmock.Sqlmock, orderID uuid.UUID, kind string) {
	mock.ExpectQuery("FROM settlement_operations").
		WithArgs(orderID, kind).
		WillReturnRows(sqlmock.NewRows(operationColumns))
}

func testTicket() Ticket {
	return Ticket{
		OrderID:    uuid.New(),
		CustomerID: 10,
		GamerID:    20,
		Reserved:   decimal.RequireFromString("80"),
	}
}

func TestReserveReplayMovesNoMoney(t *testing.T) {
	coordinator, q, mock := newTestCoordinator(t)
	ticket := testTicket()

	// The operation key is already claimed, so the second reserve must not
	// touch any wallet.
	mock.ExpectExec("INSERT INTO settlement_operations").
		WithArgs(ticket.OrderID, OpReserve, "applied", nil).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := coordinator.ReserveTx(context.Background(), q, ticket)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalizeReplayMovesNoMoney(t *testing.T) {
	coordinator, q, mock := newTestCoordinator(t)
	ticket := testTicket()

	expectNoOperation(mock, ticket.OrderID, OpReverse)
	expectOperation(mock, ticket.OrderID, OpReserve)
	mock.ExpectExec("INSERT INTO settlement_operations").
		WithArgs(ticket.OrderID, OpFinalize, "applied", nil).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Finalizing twice equals finalizing once: the replay succeeds without a
	// single ledger entry being written.
	err := coordinator.FinalizeTx(context.Background(), q, ticket, decimal.RequireFromString("80"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalizeWithoutReservation(t *testing.T) {
	coordinator, q, mock := newTestCoordinator(t)
	ticket := testTicket()

	expectNoOperation(mock, ticket.OrderID, OpReverse)
	expectNoOperation(mock, ticket.OrderID, OpReserve)

	err := coordinator.FinalizeTx(context.Background(), q, ticket, decimal.RequireFromString("80"))
	assert.ErrorIs(t, err, ErrNotReserved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalizeAfterReverse(t *testing.T) {
	coordinator, q, mock := newTestCoordinator(t)
	ticket := testTicket()

	expectOperation(mock, ticket.OrderID, OpReverse)

	err := coordinator.FinalizeTx(context.Background(), q, ticket, decimal.RequireFromString("80"))
	assert.ErrorIs(t, err, ErrAlreadyReversed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReverseAfterFinalize(t *testing.T) {
	coordinator, q, mock := newTestCoordinator(t)
	ticket := testTicket()

	expectOperation(mock, ticket.OrderID, OpFinalize)

	err := coordinator.ReverseTx(context.Background(), q, ticket, decimal.Zero)
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReverseWithoutReservation(t *testing.T) {
	coordinator, q, mock := newTestCoordinator(t)
	ticket := testTicket()

	expectNoOperation(mock, ticket.OrderID, OpFinalize)
	expectNoOperation(mock, ticket.OrderID, OpReserve)

	err := coordinator.ReverseTx(context.Background(), q, ticket, decimal.Zero)
	assert.ErrorIs(t, err, ErrNotReserved)
	assert.NoError(t, mock.ExpectationsWereMet())
}
