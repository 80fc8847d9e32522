package repository

import (
	"context"
	"errors"

	"go-medical-appointment/internal/domain/entity"
	domainRepo "go-medical-appointment/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduleRuleRepository struct{}

func NewScheduleRuleRepository() domainRepo.ScheduleRuleRepository {
	return &scheduleRuleRepository{}
}

func (r *scheduleRuleRepository) Create(ctx context.Context, db *gorm.DB, rule *entity.ScheduleRule) error {
	return db.WithContext(ctx).Omit("Doctor").Create(rule).Error
}

func (r *scheduleRuleRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.ScheduleRule, error) {
	var rule entity.ScheduleRule
	err := db.WithContext(ctx).Where("id = ?", id).First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *scheduleRuleRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.ScheduleRule, error) {
	var rules []entity.ScheduleRule
	err := db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("day_of_week ASC, start_time ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *scheduleRuleRepository) FindActiveByDoctorAndDay(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) ([]entity.ScheduleRule, error) {
	var rules []entity.ScheduleRule
	err := db.WithContext(ctx).
		Where("doctor_id = ? AND day_of_week = ? AND is_active = ?", doctorID, dayOfWeek, true).
		Order("start_time ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *scheduleRuleRepository) Update(ctx context.Context, db *gorm.DB, rule *entity.ScheduleRule) error {
	return db.WithContext(ctx).Omit("Doctor").Save(rule).Error
}

func (r *scheduleRuleRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ScheduleRule{})
	return result.RowsAffected, result.Error
}

// Blocked Range Repository

type blockedRangeRepository struct{}

func NewBlockedRangeRepository() domainRepo.BlockedRangeRepository {
	return &blockedRangeRepository{}
}

func (r *blockedRangeRepository) Create(ctx context.Context, db *gorm.DB, blocked *entity.BlockedRange) error {
	return db.WithContext(ctx).Create(blocked).Error
}

func (r *blockedRangeRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.BlockedRange, error) {
	var blocked entity.BlockedRange
	err := db.WithContext(ctx).Where("id = ?", id).First(&blocked).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blocked, nil
}

func (r *blockedRangeRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, from string) ([]entity.BlockedRange, error) {
	var ranges []entity.BlockedRange
	query := db.WithContext(ctx).Where("doctor_id = ?", doctorID)
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	err := query.Order("date ASC, start_time ASC").Find(&ranges).Error
	if err != nil {
		return nil, err
	}
	return ranges, nil
}

func (r *blockedRangeRepository) FindByDoctorAndDate(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date string) ([]entity.BlockedRange, error) {
	var ranges []entity.BlockedRange
	err := db.WithContext(ctx).
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Order("start_time ASC").
		Find(&ranges).Error
	if err != nil {
		return nil, err
	}
	return ranges, nil
}

func (r *blockedRangeRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.BlockedRange{})
	return result.RowsAffected, result.Error
}
