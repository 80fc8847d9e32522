package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentEventType names a committed appointment change
type AppointmentEventType string

const (
	AppointmentEventBooked      AppointmentEventType = "appointment.booked"
	AppointmentEventConfirmed   AppointmentEventType = "appointment.confirmed"
	AppointmentEventCompleted   AppointmentEventType = "appointment.completed"
	AppointmentEventNoShow      AppointmentEventType = "appointment.no_show"
	AppointmentEventCancelled   AppointmentEventType = "appointment.cancelled"
	AppointmentEventRescheduled AppointmentEventType = "appointment.rescheduled"
)

// EventTypeForStatus maps the status an appointment moved to onto its event type
func EventTypeForStatus(s AppointmentStatus) AppointmentEventType {
	switch s {
	case AppointmentStatusConfirmed:
		return AppointmentEventConfirmed
	case AppointmentStatusCompleted:
		return AppointmentEventCompleted
	case AppointmentStatusNoShow:
		return AppointmentEventNoShow
	case AppointmentStatusCancelled:
		return AppointmentEventCancelled
	}
	return AppointmentEventBooked
}

// AppointmentEvent is published after commit for notification, waitlist and refund consumers.
type AppointmentEvent struct {
	ID            uuid.UUID            `json:"id"`
	Type          AppointmentEventType `json:"type"`
	AppointmentID uuid.UUID            `json:"appointment_id"`
	DoctorID      uuid.UUID            `json:"doctor_id"`
	PatientID     uuid.UUID            `json:"patient_id"`
	ActorID       uuid.UUID            `json:"actor_id"`
	ActorRole     string               `json:"actor_role"`
	Status        AppointmentStatus    `json:"status"`
	Date          string               `json:"date"`
	StartTime     string               `json:"start_time"`
	EndTime       string               `json:"end_time"`
	PreviousDate  string               `json:"previous_date,omitempty"`
	PreviousStart string               `json:"previous_start_time,omitempty"`
	Fee           string               `json:"fee"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

// NewAppointmentEvent snapshots the appointment as it is after the change
func NewAppointmentEvent(t AppointmentEventType, a *Appointment, actor Actor, at time.Time) *AppointmentEvent {
	return &AppointmentEvent{
		ID:            uuid.New(),
		Type:          t,
		AppointmentID: a.ID,
		DoctorID:      a.DoctorID,
		PatientID:     a.PatientID,
		ActorID:       actor.UserID,
		ActorRole:     actor.RoleName(),
		Status:        a.Status,
		Date:          a.DateString(),
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Fee:           a.Fee.StringFixed(2),
		OccurredAt:    at,
	}
}
