package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go-medical-appointment/internal/converter"
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/policy"
	"go-medical-appointment/internal/domain/repository"
	"go-medical-appointment/internal/domain/slot"
	"go-medical-appointment/internal/service"
	"go-medical-appointment/pkg/apperror"
	"go-medical-appointment/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultPageLimit    = 20
	maxPageLimit        = 100
	eventPublishTimeout = 5 * time.Second
)

type AppointmentUsecase interface {
	Book(ctx context.Context, actor entity.Actor, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListPatientAppointments(ctx context.Context, actor entity.Actor, req *dto.AppointmentListRequest) (*dto.AppointmentListResponse, error)
	ListDoctorAppointments(ctx context.Context, actor entity.Actor, req *dto.AppointmentListRequest) (*dto.AppointmentListResponse, error)

	ChangeStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, status string) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, status string) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.AppointmentResponse, error)
	Reschedule(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	txManager        repository.TxManager
	log              *logrus.Logger
	clock            clock.Clock
	policy           policy.WindowPolicy
	appointmentRepo  repository.AppointmentRepository
	doctorRepo       repository.DoctorProfileRepository
	patientRepo      repository.PatientProfileRepository
	familyMemberRepo repository.FamilyMemberRepository
	auditService     service.AuditService
	publisher        service.AppointmentEventPublisher
	slots            *slotCalculator
}

func NewAppointmentUsecase(
	txManager repository.TxManager,
	log *logrus.Logger,
	clk clock.Clock,
	windowPolicy policy.WindowPolicy,
	appointmentRepo repository.AppointmentRepository,
	ruleRepo repository.ScheduleRuleRepository,
	blockedRepo repository.BlockedRangeRepository,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	familyMemberRepo repository.FamilyMemberRepository,
	auditService service.AuditService,
	publisher service.AppointmentEventPublisher,
) AppointmentUsecase {
	return &appointmentUsecase{
		txManager:        txManager,
		log:              log,
		clock:            clk,
		policy:           windowPolicy,
		appointmentRepo:  appointmentRepo,
		doctorRepo:       doctorRepo,
		patientRepo:      patientRepo,
		familyMemberRepo: familyMemberRepo,
		auditService:     auditService,
		publisher:        publisher,
		slots: &slotCalculator{
			ruleRepo:        ruleRepo,
			blockedRepo:     blockedRepo,
			appointmentRepo: appointmentRepo,
		},
	}
}

// Book creates a PENDING appointment for the requesting patient.
//
// Flow:
//  1. Validate the request (date, times, booking type)
//  2. Check the doctor is bookable and the family member belongs to the patient
//  3. In one serializable transaction: recheck the slot against the day's
//     rules, bookings and blocks, check the exact (doctor, date, start) tuple,
//     insert, audit
//  4. After commit publish appointment.booked
//
// Losing a race surfaces as ErrSlotUnavailable, whether it is detected by the
// recheck, by the serializable transaction or by the active-slot unique index.
func (u *appointmentUsecase) Book(ctx context.Context, actor entity.Actor, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	requested, err := parseSlotRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	bookingType := entity.BookingType(strings.ToUpper(req.BookingType))
	if bookingType == "" {
		bookingType = entity.BookingTypeSelf
	}
	if !bookingType.IsValid() {
		return nil, ErrInvalidBookingType
	}
	if bookingType == entity.BookingTypeFamilyMember && req.FamilyMemberID == nil {
		return nil, ErrFamilyMemberRequired
	}

	db := u.txManager.DB(ctx)

	doctor, err := u.doctorRepo.FindByUserID(ctx, db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsBookable() {
		return nil, ErrDoctorUnavailable
	}

	patient, err := u.patientRepo.FindByUserID(ctx, db, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", actor.UserID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	var familyMemberID *uuid.UUID
	if bookingType == entity.BookingTypeFamilyMember {
		member, err := u.familyMemberRepo.FindByID(ctx, db, *req.FamilyMemberID)
		if err != nil {
			u.log.Warnf("Failed to find family member %s: %+v", *req.FamilyMemberID, err)
			return nil, err
		}
		if member == nil {
			return nil, ErrFamilyMemberNotFound
		}
		if member.PatientID != actor.UserID {
			return nil, ErrFamilyMemberNotOwned
		}
		familyMemberID = &member.ID
	}

	appointment := &entity.Appointment{
		ID:             uuid.New(),
		DoctorID:       doctor.UserID,
		PatientID:      actor.UserID,
		Date:           day,
		StartTime:      requested.Start.String(),
		EndTime:        requested.End.String(),
		Status:         entity.AppointmentStatusPending,
		BookingType:    bookingType,
		FamilyMemberID: familyMemberID,
		Reason:         strings.TrimSpace(req.Reason),
		Fee:            doctor.ConsultationFee,
	}

	now := u.clock.Now()
	err = u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.ensureSlotFree(ctx, tx, appointment.DoctorID, day, requested, now, nil); err != nil {
			return err
		}
		if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
			return err
		}
		u.audit(ctx, tx, actor, entity.AuditActionAppointmentBook, appointment.ID, nil, snapshot(appointment))
		return nil
	})
	if err != nil {
		err = asSlotConflict(err)
		u.logFailure("book appointment", appointment, err)
		return nil, err
	}

	u.publish(entity.NewAppointmentEvent(entity.AppointmentEventBooked, appointment, actor, now))

	u.log.WithFields(appointmentFields(appointment)).Info("Appointment booked")
	return converter.AppointmentToResponse(appointment), nil
}

// GetAppointment returns the appointment to its patient or its doctor
func (u *appointmentUsecase) GetAppointment(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isParty(actor, appointment) {
		return nil, ErrNotAppointmentParty
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListPatientAppointments(ctx context.Context, actor entity.Actor, req *dto.AppointmentListRequest) (*dto.AppointmentListResponse, error) {
	filter, err := listFilter(req)
	if err != nil {
		return nil, err
	}
	filter.PatientID = &actor.UserID
	filter.Date = ""
	return u.list(ctx, filter, req)
}

func (u *appointmentUsecase) ListDoctorAppointments(ctx context.Context, actor entity.Actor, req *dto.AppointmentListRequest) (*dto.AppointmentListResponse, error) {
	filter, err := listFilter(req)
	if err != nil {
		return nil, err
	}
	filter.DoctorID = &actor.UserID
	return u.list(ctx, filter, req)
}

func (u *appointmentUsecase) list(ctx context.Context, filter *entity.AppointmentFilter, req *dto.AppointmentListRequest) (*dto.AppointmentListResponse, error) {
	appointments, total, err := u.appointmentRepo.FindAll(ctx, u.txManager.DB(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	page := filter.Offset/filter.Limit + 1
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Meta: dto.PaginationMeta{
			Page:       page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		},
	}, nil
}

// listFilter normalises pagination (page 1, limit 20, limit at most 100) and filters
func listFilter(req *dto.AppointmentListRequest) (*entity.AppointmentFilter, error) {
	if req == nil {
		req = &dto.AppointmentListRequest{}
	}

	page, limit := req.Page, req.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := &entity.AppointmentFilter{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	if req.Status != "" {
		status := entity.AppointmentStatus(strings.ToUpper(req.Status))
		if !status.IsValid() {
			return nil, apperror.Validation("Unknown appointment status: " + req.Status)
		}
		filter.Status = status
	}
	if req.Date != "" {
		day, err := parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		filter.Date = day.Format(entity.DateLayout)
	}

	return filter, nil
}

// ensureSlotFree rechecks that r is a generated, available slot of the doctor
// on day and that no active appointment other than exclude holds its start.
func (u *appointmentUsecase) ensureSlotFree(ctx context.Context, tx *gorm.DB, doctorID uuid.UUID, day time.Time, r slot.Range, now time.Time, exclude *uuid.UUID) error {
	slots, err := u.slots.slotsFor(ctx, tx, doctorID, day, now, exclude)
	if err != nil {
		return err
	}
	if s, ok := slot.Find(slots, r); !ok || !s.Available {
		return ErrSlotUnavailable
	}

	existing, err := u.appointmentRepo.FindActiveBySlot(ctx, tx, doctorID, day.Format(entity.DateLayout), r.Start.String())
	if err != nil {
		return err
	}
	if existing != nil && (exclude == nil || existing.ID != *exclude) {
		return ErrSlotUnavailable
	}
	return nil
}

func (u *appointmentUsecase) findAppointment(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.txManager.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

// audit records the change inside tx. Audit failures never fail the write.
func (u *appointmentUsecase) audit(ctx context.Context, tx *gorm.DB, actor entity.Actor, action string, id uuid.UUID, oldValue, newValue interface{}) {
	userID := actor.UserID
	var err error
	if oldValue == nil {
		err = u.auditService.LogCreate(ctx, tx, &userID, action, "appointment", id.String(), newValue)
	} else {
		err = u.auditService.LogUpdate(ctx, tx, &userID, action, "appointment", id.String(), oldValue, newValue)
	}
	if err != nil {
		u.log.Warnf("Audit skipped for %s on appointment %s: %+v", action, id, err)
	}
}

// publish hands the event to the broker after commit. Failures are logged only.
func (u *appointmentUsecase) publish(event *entity.AppointmentEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), eventPublishTimeout)
	defer cancel()

	if err := u.publisher.Publish(ctx, event); err != nil {
		u.log.Warnf("Failed to publish %s for appointment %s (non-fatal): %+v", event.Type, event.AppointmentID, err)
	}
}

func (u *appointmentUsecase) logFailure(op string, appointment *entity.Appointment, err error) {
	entry := u.log.WithFields(appointmentFields(appointment))
	switch apperror.KindOf(err) {
	case apperror.KindInternal:
		entry.Warnf("Failed to %s: %+v", op, err)
	default:
		entry.Infof("Rejected %s: %v", op, err)
	}
}

func appointmentFields(a *entity.Appointment) logrus.Fields {
	return logrus.Fields{
		"appointment_id": a.ID,
		"doctor_id":      a.DoctorID,
		"patient_id":     a.PatientID,
		"date":           a.DateString(),
		"start_time":     a.StartTime,
		"status":         a.Status,
	}
}

func snapshot(a *entity.Appointment) map[string]interface{} {
	return map[string]interface{}{
		"doctor_id":  a.DoctorID.String(),
		"patient_id": a.PatientID.String(),
		"date":       a.DateString(),
		"start_time": a.StartTime,
		"end_time":   a.EndTime,
		"status":     string(a.Status),
	}
}

// asSlotConflict turns storage-level race losses into ErrSlotUnavailable
func asSlotConflict(err error) error {
	if errors.Is(err, repository.ErrActiveSlotTaken) || errors.Is(err, repository.ErrTxConflict) {
		return apperror.Wrap(ErrSlotUnavailable, err)
	}
	return err
}

func isParty(actor entity.Actor, a *entity.Appointment) bool {
	return (actor.IsPatient() && a.IsOwnedByPatient(actor.UserID)) ||
		(actor.IsDoctor() && a.IsOwnedByDoctor(actor.UserID))
}

// parseSlotRange parses a requested [start, end) pair
func parseSlotRange(start, end string) (slot.Range, error) {
	r, err := parseRange(start, end)
	if err != nil {
		return slot.Range{}, ErrInvalidTimeFormat
	}
	if r.Start >= r.End {
		return slot.Range{}, ErrInvalidTimeRange
	}
	return r, nil
}
