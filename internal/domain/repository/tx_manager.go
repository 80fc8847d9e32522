package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager hands out database handles to usecases.
// WithinTransaction commits when fn returns nil and rolls back otherwise.
type TxManager interface {
	DB(ctx context.Context) *gorm.DB
	WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
