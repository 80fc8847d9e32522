package repository

import (
	"context"

	"go-medical-appointment/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindActiveByDoctorAndDate returns PENDING and CONFIRMED appointments of the doctor on date (YYYY-MM-DD).
	FindActiveByDoctorAndDate(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date string) ([]entity.Appointment, error)
	// FindActiveBySlot returns the appointment holding (doctor, date, start time), or nil.
	FindActiveBySlot(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date, startTime string) (*entity.Appointment, error)
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error)
	// UpdateStatus moves the appointment from one status to another.
	// Returns affected rows: 0 means the row no longer has the expected status.
	UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
	// Reschedule moves the appointment to a new slot and resets it to PENDING,
	// guarded by the expected current status like UpdateStatus.
	Reschedule(ctx context.Context, db *gorm.DB, id uuid.UUID, from entity.AppointmentStatus, date, startTime, endTime string) (int64, error)
}
