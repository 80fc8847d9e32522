package handler

import (
	"context"

	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"

	"github.com/google/uuid"
)

type mockAvailabilityUsecase struct {
	getAvailableSlotsFn   func(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error)
	getWeekAvailabilityFn func(ctx context.Context, doctorID uuid.UUID) (*dto.WeekAvailabilityResponse, error)
}

func (m *mockAvailabilityUsecase) GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
	return m.getAvailableSlotsFn(ctx, doctorID, date)
}

func (m *mockAvailabilityUsecase) GetWeekAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.WeekAvailabilityResponse, error) {
	return m.getWeekAvailabilityFn(ctx, doctorID)
}

type mockAppointmentUsecase struct {
	bookFn         func(ctx context.Context, actor entity.Actor, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	getFn          func(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.AppointmentResponse, error)
	listPatientFn  func(ctx context.Context, actor entity.Actor, req *dto.AppointmentListRequest) (*dto.AppointmentListResponse, error)
	listDoctorFn   func(ctx context.Context, actor entity.Actor, req *dto.AppointmentListRequest) (*dto.AppointmentListResponse, error)
	changeStatusFn func(ctx context.Context, actor entity.Actor, id uuid.UUID, status string) (*dto.AppointmentResponse, error)
	cancelFn       func(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.AppointmentResponse, error)
	rescheduleFn   func(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
}

func (m *mockAppointmentUsecase) Book(ctx context.Context, actor entity.Actor, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.bookFn(ctx, actor, req)
}

func (m *mockAppointmentUsecase) GetAppointment(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return m.getFn(ctx, actor, id)
}

func (m *mockAppointmentUsecase) ListPatientAppointments(ctx context.Context, actor entity.Actor, req *dto.AppointmentListRequest) (*dto.AppointmentListResponse, error) {
	return m.listPatientFn(ctx, actor, req)
}

func (m *mockAppointmentUsecase) ListDoctorAppointments(ctx context.Context, actor entity.Actor, req *dto.AppointmentListRequest) (*dto.AppointmentListResponse, error) {
	return m.listDoctorFn(ctx, actor, req)
}

func (m *mockAppointmentUsecase) ChangeStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	return m.changeStatusFn(ctx, actor, id, status)
}

func (m *mockAppointmentUsecase) UpdateStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	return m.changeStatusFn(ctx, actor, id, status)
}

func (m *mockAppointmentUsecase) Cancel(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return m.cancelFn(ctx, actor, id)
}

func (m *mockAppointmentUsecase) Reschedule(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.rescheduleFn(ctx, actor, id, req)
}

type mockScheduleRuleUsecase struct {
	listFn   func(ctx context.Context, actor entity.Actor) (*dto.ScheduleRuleListResponse, error)
	createFn func(ctx context.Context, actor entity.Actor, req *dto.CreateScheduleRuleRequest) (*dto.ScheduleRuleResponse, error)
	updateFn func(ctx context.Context, actor entity.Actor, ruleID uuid.UUID, req *dto.UpdateScheduleRuleRequest) (*dto.ScheduleRuleResponse, error)
	deleteFn func(ctx context.Context, actor entity.Actor, ruleID uuid.UUID) error
}

func (m *mockScheduleRuleUsecase) ListRules(ctx context.Context, actor entity.Actor) (*dto.ScheduleRuleListResponse, error) {
	return m.listFn(ctx, actor)
}

func (m *mockScheduleRuleUsecase) CreateRule(ctx context.Context, actor entity.Actor, req *dto.CreateScheduleRuleRequest) (*dto.ScheduleRuleResponse, error) {
	return m.createFn(ctx, actor, req)
}

func (m *mockScheduleRuleUsecase) UpdateRule(ctx context.Context, actor entity.Actor, ruleID uuid.UUID, req *dto.UpdateScheduleRuleRequest) (*dto.ScheduleRuleResponse, error) {
	return m.updateFn(ctx, actor, ruleID, req)
}

func (m *mockScheduleRuleUsecase) DeleteRule(ctx context.Context, actor entity.Actor, ruleID uuid.UUID) error {
	return m.deleteFn(ctx, actor, ruleID)
}
