package usecase

import (
	"context"

	"go-medical-appointment/internal/converter"
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/repository"
	"go-medical-appointment/internal/domain/slot"
	"go-medical-appointment/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	DefaultSlotDuration = 30
	MinSlotDuration     = 10
	MaxSlotDuration     = 120
)

type ScheduleRuleUsecase interface {
	ListRules(ctx context.Context, actor entity.Actor) (*dto.ScheduleRuleListResponse, error)
	CreateRule(ctx context.Context, actor entity.Actor, req *dto.CreateScheduleRuleRequest) (*dto.ScheduleRuleResponse, error)
	UpdateRule(ctx context.Context, actor entity.Actor, ruleID uuid.UUID, req *dto.UpdateScheduleRuleRequest) (*dto.ScheduleRuleResponse, error)
	DeleteRule(ctx context.Context, actor entity.Actor, ruleID uuid.UUID) error
}

type scheduleRuleUsecase struct {
	txManager    repository.TxManager
	log          *logrus.Logger
	ruleRepo     repository.ScheduleRuleRepository
	doctorRepo   repository.DoctorProfileRepository
	auditService service.AuditService
}

func NewScheduleRuleUsecase(
	txManager repository.TxManager,
	log *logrus.Logger,
	ruleRepo repository.ScheduleRuleRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) ScheduleRuleUsecase {
	return &scheduleRuleUsecase{
		txManager:    txManager,
		log:          log,
		ruleRepo:     ruleRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *scheduleRuleUsecase) ListRules(ctx context.Context, actor entity.Actor) (*dto.ScheduleRuleListResponse, error) {
	rules, err := u.ruleRepo.FindByDoctorID(ctx, u.txManager.DB(ctx), actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find schedule rules: %+v", err)
		return nil, err
	}

	return &dto.ScheduleRuleListResponse{
		Schedules: converter.ScheduleRulesToResponses(rules),
		Total:     len(rules),
	}, nil
}

func (u *scheduleRuleUsecase) CreateRule(ctx context.Context, actor entity.Actor, req *dto.CreateScheduleRuleRequest) (*dto.ScheduleRuleResponse, error) {
	if req.DayOfWeek == nil || *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		return nil, ErrInvalidDayOfWeek
	}

	rule := &entity.ScheduleRule{
		ID:           uuid.New(),
		DoctorID:     actor.UserID,
		DayOfWeek:    *req.DayOfWeek,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		SlotDuration: req.SlotDuration,
		IsActive:     true,
	}
	if rule.SlotDuration == 0 {
		rule.SlotDuration = DefaultSlotDuration
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if err := normalizeRule(rule); err != nil {
		return nil, err
	}
	if rest := slot.Remainder(slot.MustParseClock(rule.StartTime), slot.MustParseClock(rule.EndTime), rule.SlotDuration); rest > 0 {
		u.log.WithFields(logrus.Fields{
			"doctor_id":   actor.UserID,
			"day_of_week": rule.DayOfWeek,
			"unused_min":  rest,
		}).Info("Schedule rule window does not divide evenly, trailing minutes are not bookable")
	}

	doctor, err := u.doctorRepo.FindByUserID(ctx, u.txManager.DB(ctx), actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	err = u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.ruleRepo.Create(ctx, tx, rule); err != nil {
			return err
		}
		u.audit(ctx, tx, actor, entity.AuditActionScheduleCreate, rule.ID, nil, rule)
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to create schedule rule: %+v", err)
		return nil, err
	}

	return converter.ScheduleRuleToResponse(rule), nil
}

func (u *scheduleRuleUsecase) UpdateRule(ctx context.Context, actor entity.Actor, ruleID uuid.UUID, req *dto.UpdateScheduleRuleRequest) (*dto.ScheduleRuleResponse, error) {
	rule, err := u.findOwnedRule(ctx, actor, ruleID)
	if err != nil {
		return nil, err
	}
	before := *rule

	// Update fields
	if req.StartTime != "" {
		rule.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		rule.EndTime = req.EndTime
	}
	if req.SlotDuration != nil {
		rule.SlotDuration = *req.SlotDuration
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if err := normalizeRule(rule); err != nil {
		return nil, err
	}

	err = u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.ruleRepo.Update(ctx, tx, rule); err != nil {
			return err
		}
		u.audit(ctx, tx, actor, entity.AuditActionScheduleUpdate, rule.ID, before, rule)
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to update schedule rule %s: %+v", ruleID, err)
		return nil, err
	}

	return converter.ScheduleRuleToResponse(rule), nil
}

func (u *scheduleRuleUsecase) DeleteRule(ctx context.Context, actor entity.Actor, ruleID uuid.UUID) error {
	rule, err := u.findOwnedRule(ctx, actor, ruleID)
	if err != nil {
		return err
	}

	err = u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		affected, err := u.ruleRepo.Delete(ctx, tx, rule.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrScheduleRuleNotFound
		}
		u.audit(ctx, tx, actor, entity.AuditActionScheduleDelete, rule.ID, rule, nil)
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to delete schedule rule %s: %+v", ruleID, err)
		return err
	}
	return nil
}

func (u *scheduleRuleUsecase) findOwnedRule(ctx context.Context, actor entity.Actor, ruleID uuid.UUID) (*entity.ScheduleRule, error) {
	rule, err := u.ruleRepo.FindByID(ctx, u.txManager.DB(ctx), ruleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule rule: %+v", err)
		return nil, err
	}
	if rule == nil {
		return nil, ErrScheduleRuleNotFound
	}
	if rule.DoctorID != actor.UserID {
		return nil, ErrNotResourceOwner
	}
	return rule, nil
}

func (u *scheduleRuleUsecase) audit(ctx context.Context, tx *gorm.DB, actor entity.Actor, action string, id uuid.UUID, oldValue, newValue interface{}) {
	userID := actor.UserID
	var err error
	switch {
	case oldValue == nil:
		err = u.auditService.LogCreate(ctx, tx, &userID, action, "schedule_rule", id.String(), newValue)
	case newValue == nil:
		err = u.auditService.LogDelete(ctx, tx, &userID, action, "schedule_rule", id.String(), oldValue)
	default:
		err = u.auditService.LogUpdate(ctx, tx, &userID, action, "schedule_rule", id.String(), oldValue, newValue)
	}
	if err != nil {
		u.log.Warnf("Audit skipped for %s on schedule rule %s: %+v", action, id, err)
	}
}

// normalizeRule validates the rule with the generator's rules and rewrites
// its times in canonical HH:MM form.
func normalizeRule(rule *entity.ScheduleRule) error {
	if rule.SlotDuration < MinSlotDuration || rule.SlotDuration > MaxSlotDuration {
		return ErrInvalidSlotDuration
	}
	r, err := parseSlotRange(rule.StartTime, rule.EndTime)
	if err != nil {
		return err
	}
	slots, err := slot.Generate(r.Start, r.End, rule.SlotDuration)
	if err != nil {
		return ErrInvalidTimeRange
	}
	if len(slots) == 0 {
		return ErrInvalidScheduleRule
	}
	rule.StartTime = r.Start.String()
	rule.EndTime = r.End.String()
	return nil
}
