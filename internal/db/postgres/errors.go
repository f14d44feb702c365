package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// uniqueViolation is the SQLSTATE for unique_violation
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// isUUID reports whether s can be compared against a UUID column.
// Malformed ids would otherwise surface as a 22P02 query error.
func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
