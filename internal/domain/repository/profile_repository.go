package repository

import (
	"context"

	"go-medical-appointment/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
}

type PatientProfileRepository interface {
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error)
}

type FamilyMemberRepository interface {
	Create(ctx context.Context, db *gorm.DB, member *entity.FamilyMember) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.FamilyMember, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.FamilyMember, error)
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
