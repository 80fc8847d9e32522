package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateScheduleRuleRequest struct {
	DayOfWeek    *int   `json:"day_of_week" validate:"required,gte=0,lte=6"` // 0=Sunday..6=Saturday
	StartTime    string `json:"start_time" validate:"required,clock"`
	EndTime      string `json:"end_time" validate:"required,clock"`
	SlotDuration int    `json:"slot_duration" validate:"omitempty,gte=10,lte=120"` // default 30
	IsActive     *bool  `json:"is_active" validate:"omitempty"`
}

type UpdateScheduleRuleRequest struct {
	StartTime    string `json:"start_time" validate:"omitempty,clock"`
	EndTime      string `json:"end_time" validate:"omitempty,clock"`
	SlotDuration *int   `json:"slot_duration" validate:"omitempty,gte=10,lte=120"`
	IsActive     *bool  `json:"is_active" validate:"omitempty"`
}

type CreateBlockedRangeRequest struct {
	Date      string `json:"date" validate:"required,date"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time" validate:"required,clock"`
	Reason    string `json:"reason" validate:"omitempty,max=255"`
}

// Response DTOs

type ScheduleRuleResponse struct {
	ID           uuid.UUID `json:"id"`
	DoctorID     uuid.UUID `json:"doctor_id"`
	DayOfWeek    int       `json:"day_of_week"`
	DayName      string    `json:"day_name"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	SlotDuration int       `json:"slot_duration"`
	SlotCount    int       `json:"slot_count"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ScheduleRuleListResponse struct {
	Schedules []ScheduleRuleResponse `json:"schedules"`
	Total     int                    `json:"total"`
}

type BlockedRangeResponse struct {
	ID        uuid.UUID `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type BlockedRangeListResponse struct {
	BlockedSlots []BlockedRangeResponse `json:"blocked_slots"`
	Total        int                    `json:"total"`
}
