package usecase

import (
	"context"
	"time"

	"go-medical-appointment/internal/converter"
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/repository"
	"go-medical-appointment/internal/domain/slot"
	"go-medical-appointment/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const weekDays = 7

type AvailabilityUsecase interface {
	GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error)
	GetWeekAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.WeekAvailabilityResponse, error)
}

type availabilityUsecase struct {
	txManager repository.TxManager
	log       *logrus.Logger
	clock     clock.Clock
	slots     *slotCalculator
}

func NewAvailabilityUsecase(
	txManager repository.TxManager,
	log *logrus.Logger,
	clk clock.Clock,
	ruleRepo repository.ScheduleRuleRepository,
	blockedRepo repository.BlockedRangeRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		txManager: txManager,
		log:       log,
		clock:     clk,
		slots: &slotCalculator{
			ruleRepo:        ruleRepo,
			blockedRepo:     blockedRepo,
			appointmentRepo: appointmentRepo,
		},
	}
}

// GetAvailableSlots returns every generated slot of the doctor on date with
// its availability. A doctor without rules for that weekday, including an
// unknown doctor, gets an empty list.
func (u *availabilityUsecase) GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	slots, err := u.slots.slotsFor(ctx, u.txManager.DB(ctx), doctorID, day, u.clock.Now(), nil)
	if err != nil {
		u.log.Warnf("Failed to compute slots for doctor %s on %s: %+v", doctorID, date, err)
		return nil, err
	}

	return &dto.AvailabilityResponse{
		DoctorID:       doctorID,
		Date:           day.Format(entity.DateLayout),
		Slots:          converter.SlotsToResponses(slots),
		TotalSlots:     len(slots),
		AvailableSlots: slot.CountAvailable(slots),
	}, nil
}

// GetWeekAvailability summarises the seven days starting today. Every day is
// computed by the same path as GetAvailableSlots against one shared "now".
func (u *availabilityUsecase) GetWeekAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.WeekAvailabilityResponse, error) {
	now := u.clock.Now()
	start := today(now)
	days := make([]dto.WeekDayResponse, weekDays)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < weekDays; i++ {
		i := i
		g.Go(func() error {
			date := start.AddDate(0, 0, i)
			slots, err := u.slots.slotsFor(gctx, u.txManager.DB(gctx), doctorID, date, now, nil)
			if err != nil {
				return err
			}
			days[i] = dto.WeekDayResponse{
				Date:           date.Format(entity.DateLayout),
				DayName:        dayLabel(i, date),
				TotalSlots:     len(slots),
				AvailableSlots: slot.CountAvailable(slots),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to compute week availability for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.WeekAvailabilityResponse{
		DoctorID: doctorID,
		Days:     days,
	}, nil
}

// dayLabel is "Today" for the first day and the short weekday name otherwise
func dayLabel(offset int, date time.Time) string {
	if offset == 0 {
		return "Today"
	}
	return date.Weekday().String()[:3]
}
