package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/repository"
	"go-medical-appointment/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// mockTxManager runs transactions one at a time, which is how a serializable
// database behaves for two transactions touching the same slot.
type mockTxManager struct {
	mu  sync.Mutex
	txs int
}

func (m *mockTxManager) DB(ctx context.Context) *gorm.DB { return nil }

func (m *mockTxManager) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs++
	return fn(nil)
}

// memStore backs every mock repository
type memStore struct {
	mu           sync.Mutex
	appointments map[uuid.UUID]entity.Appointment
	rules        map[uuid.UUID]entity.ScheduleRule
	blocked      map[uuid.UUID]entity.BlockedRange
	doctors      map[uuid.UUID]entity.DoctorProfile
	patients     map[uuid.UUID]entity.PatientProfile
	family       map[uuid.UUID]entity.FamilyMember

	createErr  error // returned by appointment Create when set
	findErr    error // returned by FindActiveByDoctorAndDate when set
	skipActive bool  // hide active appointments from reads, forcing the unique index path
}

func newMemStore() *memStore {
	return &memStore{
		appointments: map[uuid.UUID]entity.Appointment{},
		rules:        map[uuid.UUID]entity.ScheduleRule{},
		blocked:      map[uuid.UUID]entity.BlockedRange{},
		doctors:      map[uuid.UUID]entity.DoctorProfile{},
		patients:     map[uuid.UUID]entity.PatientProfile{},
		family:       map[uuid.UUID]entity.FamilyMember{},
	}
}

func (s *memStore) appointment(id uuid.UUID) entity.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appointments[id]
}

func (s *memStore) putAppointment(a entity.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[a.ID] = a
}

func (s *memStore) countByStatus(status entity.AppointmentStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.appointments {
		if a.Status == status {
			n++
		}
	}
	return n
}

// =============================================================================
// Appointments
// =============================================================================

type mockAppointmentRepo struct{ *memStore }

var _ repository.AppointmentRepository = mockAppointmentRepo{}

func (r mockAppointmentRepo) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, a := range r.appointments {
		if a.Status.IsActive() && a.DoctorID == appointment.DoctorID &&
			a.DateString() == appointment.DateString() && a.StartTime == appointment.StartTime {
			return repository.ErrActiveSlotTaken
		}
	}
	r.appointments[appointment.ID] = *appointment
	return nil
}

func (r mockAppointmentRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r mockAppointmentRepo) FindActiveByDoctorAndDate(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date string) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.skipActive {
		return nil, nil
	}
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.DoctorID == doctorID && a.DateString() == date && a.Status.IsActive() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r mockAppointmentRepo) FindActiveBySlot(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date, startTime string) (*entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.skipActive {
		return nil, nil
	}
	for _, a := range r.appointments {
		if a.DoctorID == doctorID && a.DateString() == date && a.StartTime == startTime && a.Status.IsActive() {
			return &a, nil
		}
	}
	return nil, nil
}

func (r mockAppointmentRepo) FindAll(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []entity.Appointment
	for _, a := range r.appointments {
		if filter.DoctorID != nil && a.DoctorID != *filter.DoctorID {
			continue
		}
		if filter.PatientID != nil && a.PatientID != *filter.PatientID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Date != "" && a.DateString() != filter.Date {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].StartTime < matched[j].StartTime
	})

	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return []entity.Appointment{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], total, nil
}

func (r mockAppointmentRepo) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appointments[id]
	if !ok || a.Status != from {
		return 0, nil
	}
	a.Status = to
	r.appointments[id] = a
	return 1, nil
}

func (r mockAppointmentRepo) Reschedule(ctx context.Context, db *gorm.DB, id uuid.UUID, from entity.AppointmentStatus, date, startTime, endTime string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appointments[id]
	if !ok || a.Status != from {
		return 0, nil
	}
	day, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return 0, err
	}
	a.Date = day
	a.StartTime = startTime
	a.EndTime = endTime
	a.Status = entity.AppointmentStatusPending
	r.appointments[id] = a
	return 1, nil
}

// =============================================================================
// Schedule rules and blocked ranges
// =============================================================================

type mockRuleRepo struct{ *memStore }

var _ repository.ScheduleRuleRepository = mockRuleRepo{}

func (r mockRuleRepo) Create(ctx context.Context, db *gorm.DB, rule *entity.ScheduleRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.ID] = *rule
	return nil
}

func (r mockRuleRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.ScheduleRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rule, ok := r.rules[id]
	if !ok {
		return nil, nil
	}
	return &rule, nil
}

func (r mockRuleRepo) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.ScheduleRule, error) {
	return r.find(func(rule entity.ScheduleRule) bool { return rule.DoctorID == doctorID }), nil
}

func (r mockRuleRepo) FindActiveByDoctorAndDay(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) ([]entity.ScheduleRule, error) {
	return r.find(func(rule entity.ScheduleRule) bool {
		return rule.DoctorID == doctorID && rule.DayOfWeek == dayOfWeek && rule.IsActive
	}), nil
}

func (r mockRuleRepo) find(match func(entity.ScheduleRule) bool) []entity.ScheduleRule {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.ScheduleRule
	for _, rule := range r.rules {
		if match(rule) {
			out = append(out, rule)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func (r mockRuleRepo) Update(ctx context.Context, db *gorm.DB, rule *entity.ScheduleRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.ID] = *rule
	return nil
}

func (r mockRuleRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rules[id]; !ok {
		return 0, nil
	}
	delete(r.rules, id)
	return 1, nil
}

type mockBlockedRepo struct{ *memStore }

var _ repository.BlockedRangeRepository = mockBlockedRepo{}

func (r mockBlockedRepo) Create(ctx context.Context, db *gorm.DB, blocked *entity.BlockedRange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocked[blocked.ID] = *blocked
	return nil
}

func (r mockBlockedRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.BlockedRange, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blocked[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r mockBlockedRepo) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, from string) ([]entity.BlockedRange, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.BlockedRange
	for _, b := range r.blocked {
		if b.DoctorID == doctorID && (from == "" || b.Date.Format(entity.DateLayout) >= from) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r mockBlockedRepo) FindByDoctorAndDate(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date string) ([]entity.BlockedRange, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.BlockedRange
	for _, b := range r.blocked {
		if b.DoctorID == doctorID && b.Date.Format(entity.DateLayout) == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r mockBlockedRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blocked[id]; !ok {
		return 0, nil
	}
	delete(r.blocked, id)
	return 1, nil
}

// =============================================================================
// Profiles
// =============================================================================

type mockDoctorRepo struct{ *memStore }

func (r mockDoctorRepo) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.doctors[userID]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

type mockPatientRepo struct{ *memStore }

func (r mockPatientRepo) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.patients[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type mockFamilyRepo struct{ *memStore }

var _ repository.FamilyMemberRepository = mockFamilyRepo{}

func (r mockFamilyRepo) Create(ctx context.Context, db *gorm.DB, member *entity.FamilyMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.family[member.ID] = *member
	return nil
}

func (r mockFamilyRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.FamilyMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.family[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r mockFamilyRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.FamilyMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.FamilyMember
	for _, m := range r.family {
		if m.PatientID == patientID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r mockFamilyRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.family[id]; !ok {
		return 0, nil
	}
	delete(r.family, id)
	return 1, nil
}

// =============================================================================
// Audit and events
// =============================================================================

type auditEntry struct {
	Action   string
	Entity   string
	EntityID string
}

type mockAuditService struct {
	mu      sync.Mutex
	entries []auditEntry
	err     error
}

var _ service.AuditService = (*mockAuditService)(nil)

func (m *mockAuditService) record(action, entityName, entityID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, auditEntry{Action: action, Entity: entityName, EntityID: entityID})
	return nil
}

func (m *mockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return m.record(action, entityName, entityID)
}

func (m *mockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return m.record(action, entityName, entityID)
}

func (m *mockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return m.record(action, entityName, entityID)
}

func (m *mockAuditService) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Action
	}
	return out
}

type mockPublisher struct {
	mu     sync.Mutex
	events []entity.AppointmentEvent
	err    error
}

var _ service.AppointmentEventPublisher = (*mockPublisher)(nil)

func (m *mockPublisher) Publish(ctx context.Context, event *entity.AppointmentEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, *event)
	return nil
}

func (m *mockPublisher) Close() error { return nil }

func (m *mockPublisher) published() []entity.AppointmentEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entity.AppointmentEvent(nil), m.events...)
}

var errStorage = errors.New("storage unavailable")
