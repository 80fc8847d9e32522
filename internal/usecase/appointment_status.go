package usecase

import (
	"context"
	"errors"
	"strings"

	"go-medical-appointment/internal/converter"
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/repository"
	"go-medical-appointment/internal/domain/slot"
	"go-medical-appointment/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChangeStatus applies a status change requested by actor. CANCELLED follows
// the cancel rules; any other value goes through the doctor status update.
func (u *appointmentUsecase) ChangeStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	if entity.AppointmentStatus(strings.ToUpper(status)) == entity.AppointmentStatusCancelled {
		return u.Cancel(ctx, actor, id)
	}
	return u.UpdateStatus(ctx, actor, id, status)
}

// UpdateStatus lets the appointment's doctor confirm it, complete it or mark it
// as no-show. Allowed moves: PENDING -> CONFIRMED, CONFIRMED -> COMPLETED | NO_SHOW.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	target := entity.AppointmentStatus(strings.ToUpper(status))
	if !target.IsDoctorTarget() {
		return nil, ErrInvalidStatusTarget
	}

	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsDoctor() || !appointment.IsOwnedByDoctor(actor.UserID) {
		return nil, ErrNotAppointmentDoctor
	}
	if !appointment.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	if err := u.transition(ctx, actor, appointment, target, entity.AuditActionForStatus(target)); err != nil {
		return nil, err
	}

	u.publish(entity.NewAppointmentEvent(entity.EventTypeForStatus(target), appointment, actor, u.clock.Now()))
	u.log.WithFields(appointmentFields(appointment)).Info("Appointment status updated")
	return converter.AppointmentToResponse(appointment), nil
}

// Cancel lets either party cancel a PENDING or CONFIRMED appointment while the
// cancellation window is still open.
func (u *appointmentUsecase) Cancel(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isParty(actor, appointment) {
		return nil, ErrNotAppointmentParty
	}
	if !appointment.Status.IsActive() {
		return nil, ErrCannotCancel
	}

	start, err := slot.ParseClock(appointment.StartTime)
	if err != nil {
		return nil, apperror.Internal("Stored appointment time is invalid", err)
	}
	now := u.clock.Now()
	if !u.policy.CanCancel(appointment.Date, start, now) {
		return nil, ErrCancelWindowClosed
	}

	if err := u.transition(ctx, actor, appointment, entity.AppointmentStatusCancelled, entity.AuditActionAppointmentCancel); err != nil {
		return nil, err
	}

	u.publish(entity.NewAppointmentEvent(entity.AppointmentEventCancelled, appointment, actor, now))
	u.log.WithFields(appointmentFields(appointment)).Infof("Appointment cancelled by %s", actor.RoleName())
	return converter.AppointmentToResponse(appointment), nil
}

// Reschedule moves the patient's appointment to another slot of the same
// doctor. The original start must still be outside the reschedule window and
// the new slot must pass the same recheck as Book, ignoring the appointment
// being moved. The appointment returns to PENDING for the doctor to confirm.
func (u *appointmentUsecase) Reschedule(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	requested, err := parseSlotRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsPatient() || !appointment.IsOwnedByPatient(actor.UserID) {
		return nil, ErrNotAppointmentOwner
	}
	if !appointment.Status.IsActive() {
		return nil, ErrCannotReschedule
	}

	originalStart, err := slot.ParseClock(appointment.StartTime)
	if err != nil {
		return nil, apperror.Internal("Stored appointment time is invalid", err)
	}
	now := u.clock.Now()
	if !u.policy.CanReschedule(appointment.Date, originalStart, now) {
		return nil, ErrRescheduleWindowClosed
	}

	before := snapshot(appointment)
	from := appointment.Status
	dateStr := day.Format(entity.DateLayout)

	err = u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.ensureSlotFree(ctx, tx, appointment.DoctorID, day, requested, now, &appointment.ID); err != nil {
			return err
		}
		affected, err := u.appointmentRepo.Reschedule(ctx, tx, appointment.ID, from, dateStr, requested.Start.String(), requested.End.String())
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrAppointmentChanged
		}

		moved := *appointment
		moved.Date = day
		moved.StartTime = requested.Start.String()
		moved.EndTime = requested.End.String()
		moved.Status = entity.AppointmentStatusPending
		u.audit(ctx, tx, actor, entity.AuditActionAppointmentReschedule, appointment.ID, before, snapshot(&moved))
		return nil
	})
	if err != nil {
		err = asSlotConflict(err)
		u.logFailure("reschedule appointment", appointment, err)
		return nil, err
	}

	previousDate, previousStart := appointment.DateString(), appointment.StartTime
	appointment.Date = day
	appointment.StartTime = requested.Start.String()
	appointment.EndTime = requested.End.String()
	appointment.Status = entity.AppointmentStatusPending

	event := entity.NewAppointmentEvent(entity.AppointmentEventRescheduled, appointment, actor, now)
	event.PreviousDate = previousDate
	event.PreviousStart = previousStart
	u.publish(event)

	u.log.WithFields(appointmentFields(appointment)).Infof("Appointment rescheduled from %s %s", previousDate, previousStart)
	return converter.AppointmentToResponse(appointment), nil
}

// transition moves appointment to target only if its row still has the status
// that was read, then records the audit entry in the same transaction.
func (u *appointmentUsecase) transition(ctx context.Context, actor entity.Actor, appointment *entity.Appointment, target entity.AppointmentStatus, action string) error {
	from := appointment.Status

	err := u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		affected, err := u.appointmentRepo.UpdateStatus(ctx, tx, appointment.ID, from, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrAppointmentChanged
		}
		u.audit(ctx, tx, actor, action, appointment.ID,
			map[string]interface{}{"status": string(from)},
			map[string]interface{}{"status": string(target)},
		)
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrTxConflict) {
			err = apperror.Wrap(ErrAppointmentChanged, err)
		}
		u.logFailure("change appointment status", appointment, err)
		return err
	}

	appointment.Status = target
	return nil
}
