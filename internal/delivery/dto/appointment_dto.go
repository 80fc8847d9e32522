package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID       uuid.UUID  `json:"doctor_id" validate:"required"`
	Date           string     `json:"date" validate:"required,date"`        // Format: YYYY-MM-DD
	StartTime      string     `json:"start_time" validate:"required,clock"` // Format: HH:MM
	EndTime        string     `json:"end_time" validate:"required,clock"`   // Format: HH:MM
	Reason         string     `json:"reason" validate:"omitempty,max=500"`
	BookingType    string     `json:"booking_type" validate:"omitempty,oneof=SELF FAMILY_MEMBER"`
	FamilyMemberID *uuid.UUID `json:"family_member_id" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RescheduleAppointmentRequest struct {
	Date      string `json:"date" validate:"required,date"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time" validate:"required,clock"`
}

// AppointmentListRequest carries listing filters from the query string
type AppointmentListRequest struct {
	Status string
	Date   string
	Page   int
	Limit  int
}

// Response DTOs

type AppointmentResponse struct {
	ID             uuid.UUID             `json:"id"`
	DoctorID       uuid.UUID             `json:"doctor_id"`
	PatientID      uuid.UUID             `json:"patient_id"`
	Date           string                `json:"date"`
	StartTime      string                `json:"start_time"`
	EndTime        string                `json:"end_time"`
	Status         string                `json:"status"`
	BookingType    string                `json:"booking_type"`
	FamilyMemberID *uuid.UUID            `json:"family_member_id,omitempty"`
	Reason         string                `json:"reason,omitempty"`
	Fee            string                `json:"fee"`
	Doctor         *DoctorSummary        `json:"doctor,omitempty"`
	Patient        *PatientSummary       `json:"patient,omitempty"`
	FamilyMember   *FamilyMemberResponse `json:"family_member,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type PaginationMeta struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Meta         PaginationMeta        `json:"-"`
}
