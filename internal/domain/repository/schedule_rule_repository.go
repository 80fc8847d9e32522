package repository

import (
	"context"

	"go-medical-appointment/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleRuleRepository interface {
	Create(ctx context.Context, db *gorm.DB, rule *entity.ScheduleRule) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.ScheduleRule, error)
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.ScheduleRule, error)
	// FindActiveByDoctorAndDay returns active rules for dayOfWeek ordered by start time.
	FindActiveByDoctorAndDay(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) ([]entity.ScheduleRule, error)
	Update(ctx context.Context, db *gorm.DB, rule *entity.ScheduleRule) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}

type BlockedRangeRepository interface {
	Create(ctx context.Context, db *gorm.DB, blocked *entity.BlockedRange) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.BlockedRange, error)
	// FindByDoctorID lists ranges on or after from (YYYY-MM-DD); empty from lists all.
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, from string) ([]entity.BlockedRange, error)
	FindByDoctorAndDate(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date string) ([]entity.BlockedRange, error)
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
