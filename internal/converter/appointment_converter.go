package converter

import (
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:             appointment.ID,
		DoctorID:       appointment.DoctorID,
		PatientID:      appointment.PatientID,
		Date:           appointment.DateString(),
		StartTime:      appointment.StartTime,
		EndTime:        appointment.EndTime,
		Status:         string(appointment.Status),
		BookingType:    string(appointment.BookingType),
		FamilyMemberID: appointment.FamilyMemberID,
		Reason:         appointment.Reason,
		Fee:            appointment.Fee.StringFixed(2),
		CreatedAt:      appointment.CreatedAt,
		UpdatedAt:      appointment.UpdatedAt,
	}

	// Include doctor info if preloaded
	if appointment.Doctor.UserID != uuid.Nil {
		response.Doctor = &dto.DoctorSummary{
			ID:             appointment.Doctor.UserID,
			FullName:       appointment.Doctor.User.FullName,
			Specialization: appointment.Doctor.Specialization,
		}
	}

	if appointment.Patient.UserID != uuid.Nil {
		response.Patient = &dto.PatientSummary{
			ID:       appointment.Patient.UserID,
			FullName: appointment.Patient.User.FullName,
			Email:    appointment.Patient.User.Email,
		}
	}

	if appointment.FamilyMember != nil {
		response.FamilyMember = FamilyMemberToResponse(appointment.FamilyMember)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		if resp := AppointmentToResponse(&appointments[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
