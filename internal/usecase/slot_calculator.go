package usecase

import (
	"context"
	"fmt"
	"time"

	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/repository"
	"go-medical-appointment/internal/domain/slot"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// slotCalculator loads one doctor-day from storage and runs it through the
// generator and the overlap filter. Availability reads and the booking
// recheck share it so both apply identical rules.
type slotCalculator struct {
	ruleRepo        repository.ScheduleRuleRepository
	blockedRepo     repository.BlockedRangeRepository
	appointmentRepo repository.AppointmentRepository
}

// slotsFor returns the annotated slots of doctorID on date as seen at now.
// exclude leaves one appointment out of the booked ranges (the one being rescheduled).
func (c *slotCalculator) slotsFor(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date, now time.Time, exclude *uuid.UUID) ([]slot.Slot, error) {
	rules, err := c.ruleRepo.FindActiveByDoctorAndDay(ctx, db, doctorID, int(date.Weekday()))
	if err != nil {
		return nil, fmt.Errorf("load schedule rules: %w", err)
	}
	if len(rules) == 0 {
		return []slot.Slot{}, nil
	}

	var generated []slot.Range
	for _, rule := range rules {
		ranges, err := generateForRule(rule)
		if err != nil {
			return nil, err
		}
		generated = append(generated, ranges...)
	}

	dateStr := date.Format(entity.DateLayout)

	appointments, err := c.appointmentRepo.FindActiveByDoctorAndDate(ctx, db, doctorID, dateStr)
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}
	blockedRanges, err := c.blockedRepo.FindByDoctorAndDate(ctx, db, doctorID, dateStr)
	if err != nil {
		return nil, fmt.Errorf("load blocked ranges: %w", err)
	}

	filter := slot.Filter{Cutoff: cutoffFor(date, now)}
	for _, a := range appointments {
		if exclude != nil && a.ID == *exclude {
			continue
		}
		r, err := parseRange(a.StartTime, a.EndTime)
		if err != nil {
			return nil, fmt.Errorf("appointment %s: %w", a.ID, err)
		}
		filter.Booked = append(filter.Booked, r)
	}
	for _, b := range blockedRanges {
		r, err := parseRange(b.StartTime, b.EndTime)
		if err != nil {
			return nil, fmt.Errorf("blocked range %s: %w", b.ID, err)
		}
		filter.Blocked = append(filter.Blocked, r)
	}

	return filter.Apply(generated), nil
}

func generateForRule(rule entity.ScheduleRule) ([]slot.Range, error) {
	start, err := slot.ParseClock(rule.StartTime)
	if err != nil {
		return nil, fmt.Errorf("schedule rule %s start: %w", rule.ID, err)
	}
	end, err := slot.ParseClock(rule.EndTime)
	if err != nil {
		return nil, fmt.Errorf("schedule rule %s end: %w", rule.ID, err)
	}
	ranges, err := slot.Generate(start, end, rule.SlotDuration)
	if err != nil {
		return nil, fmt.Errorf("schedule rule %s: %w", rule.ID, err)
	}
	return ranges, nil
}

func parseRange(start, end string) (slot.Range, error) {
	s, err := slot.ParseClock(start)
	if err != nil {
		return slot.Range{}, err
	}
	e, err := slot.ParseClock(end)
	if err != nil {
		return slot.Range{}, err
	}
	return slot.Range{Start: s, End: e}, nil
}

// cutoffFor returns the elapsed-slot cutoff for date: the current minute
// today, the whole day for past dates, none for future dates.
func cutoffFor(date, now time.Time) *slot.Clock {
	switch compareDays(date, now) {
	case -1:
		c := slot.LastStart
		return &c
	case 0:
		c := slot.ClockOf(now)
		return &c
	}
	return nil
}

// compareDays compares the calendar days of a and b, each read in its own location.
func compareDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	switch {
	case da.Before(db):
		return -1
	case da.After(db):
		return 1
	}
	return 0
}

// parseDate parses YYYY-MM-DD into a calendar date at UTC midnight
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// today returns now's calendar day at UTC midnight, matching parseDate
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
