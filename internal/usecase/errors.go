package usecase

import "go-medical-appointment/pkg/apperror"

// Validation
var (
	ErrInvalidDate          = apperror.Validation("Invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat    = apperror.Validation("Invalid time format, use HH:MM")
	ErrInvalidTimeRange     = apperror.Validation("Start time must be before end time")
	ErrInvalidBookingType   = apperror.Validation("Booking type must be SELF or FAMILY_MEMBER")
	ErrFamilyMemberRequired = apperror.Validation("Family member is required for FAMILY_MEMBER bookings")
	ErrInvalidStatusTarget  = apperror.Validation("Status must be one of CONFIRMED, COMPLETED, NO_SHOW")
	ErrInvalidDayOfWeek     = apperror.Validation("Day of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidSlotDuration  = apperror.Validation("Slot duration must be between 10 and 120 minutes")
	ErrInvalidScheduleRule  = apperror.Validation("Schedule window must be longer than one slot")
)

// Not found
var (
	ErrDoctorUnavailable    = apperror.New(apperror.KindNotFound, "Doctor not found or unavailable")
	ErrDoctorNotFound       = apperror.NotFound("Doctor")
	ErrPatientNotFound      = apperror.NotFound("Patient")
	ErrAppointmentNotFound  = apperror.NotFound("Appointment")
	ErrScheduleRuleNotFound = apperror.NotFound("Schedule")
	ErrBlockedRangeNotFound = apperror.NotFound("Blocked slot")
	ErrFamilyMemberNotFound = apperror.NotFound("Family member")
)

// Forbidden
var (
	ErrNotAppointmentParty  = apperror.Forbidden("You do not have access to this appointment")
	ErrNotAppointmentDoctor = apperror.Forbidden("Only the doctor of this appointment can change its status")
	ErrNotAppointmentOwner  = apperror.Forbidden("Only the patient who booked this appointment can reschedule it")
	ErrNotResourceOwner     = apperror.Forbidden("You do not own this resource")
	ErrFamilyMemberNotOwned = apperror.Forbidden("Family member does not belong to you")
)

// Conflict
var (
	ErrSlotUnavailable    = apperror.Conflict("This time slot is no longer available. Please choose another.")
	ErrAppointmentChanged = apperror.Conflict("Appointment was changed by another request. Please reload and try again.")
)

// Invalid transition
var (
	ErrInvalidTransition = apperror.InvalidTransition("Appointment cannot move to the requested status")
	ErrCannotCancel      = apperror.InvalidTransition("Only pending or confirmed appointments can be cancelled")
	ErrCannotReschedule  = apperror.InvalidTransition("Only pending or confirmed appointments can be rescheduled")
)

// Policy
var (
	ErrCancelWindowClosed     = apperror.PolicyViolation("It is too late to cancel this appointment")
	ErrRescheduleWindowClosed = apperror.PolicyViolation("It is too late to reschedule this appointment")
)
