package dto

import "github.com/google/uuid"

type SlotResponse struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type AvailabilityResponse struct {
	DoctorID       uuid.UUID      `json:"doctor_id"`
	Date           string         `json:"date"`
	Slots          []SlotResponse `json:"slots"`
	TotalSlots     int            `json:"total_slots"`
	AvailableSlots int            `json:"available_slots"`
}

// WeekDayResponse summarises one day of the 7-day rollup
type WeekDayResponse struct {
	Date           string `json:"date"`
	DayName        string `json:"day_name"`
	TotalSlots     int    `json:"total_slots"`
	AvailableSlots int    `json:"available_slots"`
}

type WeekAvailabilityResponse struct {
	DoctorID uuid.UUID         `json:"doctor_id"`
	Days     []WeekDayResponse `json:"days"`
}
