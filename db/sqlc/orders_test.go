package db

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountOverlappingOrdersOnlyCancelledFreesTheWindow(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	q := New(conn)

	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	// A disputed order still holds its window: it may resolve back to
	// completed, so the conflict predicate excludes cancelled orders only.
	mock.ExpectQuery(`status != 'cancelled'`).
		WithArgs(int64(7), start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := q.CountOverlappingOrders(context.Background(), CountOverlappingOrdersParams{
		GamerID:     7,
		WindowStart: start,
		WindowEnd:   end,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
