package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for listing appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Status    AppointmentStatus // empty = any
	Date      string            // Format: YYYY-MM-DD, empty = any
	Limit     int
	Offset    int
}
