package usecase

import (
	"testing"
	"time"

	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/policy"
	"go-medical-appointment/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Friday 2026-10-16 08:00 UTC. The next Monday is 2026-10-19.
var friday = time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

const (
	thisFriday = "2026-10-16"
	nextSunday = "2026-10-18"
	nextMonday = "2026-10-19"
	nextFriday = "2026-10-23"
	lastMonday = "2026-10-12"
)

type fixture struct {
	t         *testing.T
	now       time.Time
	store     *memStore
	tx        *mockTxManager
	audit     *mockAuditService
	publisher *mockPublisher
	doctor    entity.Actor
	patient   entity.Actor
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	f := &fixture{
		t:         t,
		now:       now,
		store:     newMemStore(),
		tx:        &mockTxManager{},
		audit:     &mockAuditService{},
		publisher: &mockPublisher{},
		doctor:    entity.Actor{UserID: uuid.New(), RoleID: entity.RoleIDDoctor},
		patient:   entity.Actor{UserID: uuid.New(), RoleID: entity.RoleIDPatient},
	}
	f.store.doctors[f.doctor.UserID] = entity.DoctorProfile{
		UserID:          f.doctor.UserID,
		Specialization:  "Cardiology",
		ConsultationFee: decimal.NewFromInt(150000),
		IsActive:        true,
		IsVerified:      true,
	}
	f.store.patients[f.patient.UserID] = entity.PatientProfile{UserID: f.patient.UserID}
	return f
}

func (f *fixture) newPatient() entity.Actor {
	p := entity.Actor{UserID: uuid.New(), RoleID: entity.RoleIDPatient}
	f.store.mu.Lock()
	f.store.patients[p.UserID] = entity.PatientProfile{UserID: p.UserID}
	f.store.mu.Unlock()
	return p
}

func (f *fixture) newDoctor() entity.Actor {
	d := entity.Actor{UserID: uuid.New(), RoleID: entity.RoleIDDoctor}
	f.store.mu.Lock()
	f.store.doctors[d.UserID] = entity.DoctorProfile{UserID: d.UserID, IsActive: true, IsVerified: true}
	f.store.mu.Unlock()
	return d
}

func (f *fixture) appointments() AppointmentUsecase {
	return NewAppointmentUsecase(
		f.tx,
		testLogger(),
		clock.Fixed(f.now),
		policy.Default(),
		mockAppointmentRepo{f.store},
		mockRuleRepo{f.store},
		mockBlockedRepo{f.store},
		mockDoctorRepo{f.store},
		mockPatientRepo{f.store},
		mockFamilyRepo{f.store},
		f.audit,
		f.publisher,
	)
}

func (f *fixture) availability() AvailabilityUsecase {
	return NewAvailabilityUsecase(
		f.tx,
		testLogger(),
		clock.Fixed(f.now),
		mockRuleRepo{f.store},
		mockBlockedRepo{f.store},
		mockAppointmentRepo{f.store},
	)
}

func (f *fixture) scheduleRules() ScheduleRuleUsecase {
	return NewScheduleRuleUsecase(f.tx, testLogger(), mockRuleRepo{f.store}, mockDoctorRepo{f.store}, f.audit)
}

func (f *fixture) blockedRanges() BlockedRangeUsecase {
	return NewBlockedRangeUsecase(f.tx, testLogger(), mockBlockedRepo{f.store}, f.audit)
}

func (f *fixture) familyMembers() FamilyMemberUsecase {
	return NewFamilyMemberUsecase(f.tx, testLogger(), mockFamilyRepo{f.store}, mockPatientRepo{f.store}, f.audit)
}

// addRule gives the fixture doctor a weekly window
func (f *fixture) addRule(day time.Weekday, start, end string, duration int) entity.ScheduleRule {
	rule := entity.ScheduleRule{
		ID:           uuid.New(),
		DoctorID:     f.doctor.UserID,
		DayOfWeek:    int(day),
		StartTime:    start,
		EndTime:      end,
		SlotDuration: duration,
		IsActive:     true,
	}
	f.store.mu.Lock()
	f.store.rules[rule.ID] = rule
	f.store.mu.Unlock()
	return rule
}

func (f *fixture) addBlock(date, start, end string) entity.BlockedRange {
	b := entity.BlockedRange{
		ID:        uuid.New(),
		DoctorID:  f.doctor.UserID,
		Date:      mustDate(f.t, date),
		StartTime: start,
		EndTime:   end,
	}
	f.store.mu.Lock()
	f.store.blocked[b.ID] = b
	f.store.mu.Unlock()
	return b
}

// seedAppointment stores an appointment of the fixture doctor and patient
func (f *fixture) seedAppointment(date, start, end string, status entity.AppointmentStatus) entity.Appointment {
	a := entity.Appointment{
		ID:          uuid.New(),
		DoctorID:    f.doctor.UserID,
		PatientID:   f.patient.UserID,
		Date:        mustDate(f.t, date),
		StartTime:   start,
		EndTime:     end,
		Status:      status,
		BookingType: entity.BookingTypeSelf,
		Fee:         decimal.NewFromInt(150000),
	}
	f.store.putAppointment(a)
	return a
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}
