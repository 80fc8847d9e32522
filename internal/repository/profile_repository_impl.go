package repository

import (
	"context"
	"errors"

	"go-medical-appointment/internal/domain/entity"
	domainRepo "go-medical-appointment/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor Profile Repository

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Patient Profile Repository

type patientProfileRepository struct{}

func NewPatientProfileRepository() domainRepo.PatientProfileRepository {
	return &patientProfileRepository{}
}

func (r *patientProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Family Member Repository

type familyMemberRepository struct{}

func NewFamilyMemberRepository() domainRepo.FamilyMemberRepository {
	return &familyMemberRepository{}
}

func (r *familyMemberRepository) Create(ctx context.Context, db *gorm.DB, member *entity.FamilyMember) error {
	return db.WithContext(ctx).Create(member).Error
}

func (r *familyMemberRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.FamilyMember, error) {
	var member entity.FamilyMember
	err := db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *familyMemberRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.FamilyMember, error) {
	var members []entity.FamilyMember
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).Order("created_at ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *familyMemberRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.FamilyMember{})
	return result.RowsAffected, result.Error
}
