package db

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	*Queries
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		DB:      db,
		Queries: New(db),
	}
}

func (s *Store) ExecTx(ctx context.Context, fq func(q *Queries) error) error {
	return s.execTx(ctx, nil, fq)
}

// ExecSerializableTx runs fq under SERIALIZABLE isolation. Booking-conflict
// checks need it: two concurrent creates for overlapping windows must not
// both commit.
func (s *Store) ExecSerializableTx(ctx context.Context, fq func(q *Queries) error) error {
	return s.execTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fq)
}

func (s *Store) execTx(ctx context.Context, opts *sql.TxOptions, fq func(q *Queries) error) error {
	tx, err := s.DB.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fq(q)

	if err != nil {
		if txErr := tx.Rollback(); txErr != nil {
			return fmt.Errorf("encountered rollback error: %v", txErr)
		}
		return err
	}

	return tx.Commit()
}
