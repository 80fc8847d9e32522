package dto

import (
	"github.com/google/uuid"
)

// DoctorSummary is the doctor block embedded in appointment responses
type DoctorSummary struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	Specialization string    `json:"specialization"`
}

// PatientSummary is the patient block embedded in appointment responses
type PatientSummary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}
