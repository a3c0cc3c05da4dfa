package db

import "github.com/lib/pq"

const (
	DuplicateEntry       pq.ErrorCode = "23505"
	EntryTooLong         pq.ErrorCode = "22001"
	SerializationFailure pq.ErrorCode = "40001"
)

// IsSerializationFailure reports whether err is a Postgres serialization
// failure, which callers under SERIALIZABLE isolation should treat as a
// lost race rather than an internal error.
func IsSerializationFailure(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == SerializationFailure
	}
	return false
}

// IsDuplicateEntry reports whether err is a unique constraint violation.
func IsDuplicateEntry(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == DuplicateEntry
	}
	return false
}
