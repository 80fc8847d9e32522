package repository

import (
	"errors"
	"fmt"
	"testing"

	domainRepo "go-medical-appointment/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassifyError(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"active slot violation", &pgconn.PgError{Code: "23505", ConstraintName: ActiveSlotIndex}, domainRepo.ErrActiveSlotTaken},
		{"wrapped violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "UQ_APPOINTMENTS_ACTIVE_SLOT"}), domainRepo.ErrActiveSlotTaken},
		{"other unique index", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, nil},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, domainRepo.ErrTxConflict},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, domainRepo.ErrTxConflict},
		{"plain error", plain, plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			if tt.want == nil {
				if tt.err == nil && got != nil {
					t.Fatalf("classifyError(nil) = %v", got)
				}
				if tt.err != nil && (errors.Is(got, domainRepo.ErrActiveSlotTaken) || errors.Is(got, domainRepo.ErrTxConflict)) {
					t.Fatalf("classifyError(%v) = %v, want passthrough", tt.err, got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("classifyError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
