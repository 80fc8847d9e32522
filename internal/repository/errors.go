package repository

import (
	"errors"
	"strings"

	domainRepo "go-medical-appointment/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

// ActiveSlotIndex is the partial unique index over active appointments.
const ActiveSlotIndex = "uq_appointments_active_slot"

// PostgreSQL error codes
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isTxConflictError checks for errors a serializable transaction raises when it loses a race
func isTxConflictError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	return false
}

// classifyError maps driver errors to repository sentinels. Unknown errors pass through.
func classifyError(err error) error {
	switch {
	case err == nil:
		return nil
	case isDuplicateKeyError(err, ActiveSlotIndex):
		return domainRepo.ErrActiveSlotTaken
	case isTxConflictError(err):
		return domainRepo.ErrTxConflict
	}
	return err
}
