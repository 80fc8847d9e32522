package repository

import (
	"context"
	"database/sql"

	domainRepo "go-medical-appointment/internal/domain/repository"

	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// NewTxManager runs transactions at serializable isolation so that concurrent
// bookers of one slot cannot both pass the availability recheck.
func NewTxManager(db *gorm.DB) domainRepo.TxManager {
	return &txManager{db: db}
}

func (m *txManager) DB(ctx context.Context) *gorm.DB {
	return m.db.WithContext(ctx)
}

func (m *txManager) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	err := m.db.WithContext(ctx).Transaction(fn, &sql.TxOptions{Isolation: sql.LevelSerializable})
	return classifyError(err)
}
