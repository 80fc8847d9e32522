package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusNoShow    AppointmentStatus = "NO_SHOW"
)

// ActiveAppointmentStatuses hold a slot. At most one appointment in these
// statuses may exist per (doctor, date, start time).
var ActiveAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
}

// doctorTransitions lists the targets a doctor may move an appointment to.
var doctorTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusNoShow},
}

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled,
		AppointmentStatusCompleted, AppointmentStatusNoShow:
		return true
	}
	return false
}

// IsActive reports whether the status still holds its slot.
func (s AppointmentStatus) IsActive() bool {
	return s == AppointmentStatusPending || s == AppointmentStatusConfirmed
}

func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCancelled || s == AppointmentStatusCompleted || s == AppointmentStatusNoShow
}

// IsDoctorTarget reports whether s may be requested through a doctor status update.
func (s AppointmentStatus) IsDoctorTarget() bool {
	return s == AppointmentStatusConfirmed || s == AppointmentStatusCompleted || s == AppointmentStatusNoShow
}

// CanTransitionTo reports whether a doctor status update from s to target is allowed.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, next := range doctorTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// BookingType tells whether the patient books for themselves or a family member
type BookingType string

const (
	BookingTypeSelf         BookingType = "SELF"
	BookingTypeFamilyMember BookingType = "FAMILY_MEMBER"
)

func (t BookingType) IsValid() bool {
	return t == BookingTypeSelf || t == BookingTypeFamilyMember
}

// Appointment represents a patient booking of one doctor slot.
// Date is a calendar day; StartTime/EndTime are wall-clock "HH:MM" strings.
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID       uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_doctor_date" json:"doctor_id"`
	PatientID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	Date           time.Time         `gorm:"type:date;not null;index:idx_appointments_doctor_date" json:"date"`
	StartTime      string            `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime        string            `gorm:"type:varchar(5);not null" json:"end_time"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	BookingType    BookingType       `gorm:"type:varchar(20);not null;default:'SELF'" json:"booking_type"`
	FamilyMemberID *uuid.UUID        `gorm:"type:uuid" json:"family_member_id,omitempty"`
	Reason         string            `gorm:"type:text" json:"reason,omitempty"`
	Fee            decimal.Decimal   `gorm:"type:decimal(10,2);not null;default:0" json:"fee"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor       DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient      PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	FamilyMember *FamilyMember  `gorm:"foreignKey:FamilyMemberID" json:"family_member,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsOwnedByDoctor checks if the appointment belongs to the doctor
func (a *Appointment) IsOwnedByDoctor(doctorID uuid.UUID) bool {
	return a.DoctorID == doctorID
}

// IsOwnedByPatient checks if the appointment was booked by the patient
func (a *Appointment) IsOwnedByPatient(patientID uuid.UUID) bool {
	return a.PatientID == patientID
}

// DateString returns the appointment date as YYYY-MM-DD
func (a *Appointment) DateString() string {
	return a.Date.Format(DateLayout)
}
