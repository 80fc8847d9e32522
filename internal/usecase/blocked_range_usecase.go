package usecase

import (
	"context"
	"strings"

	"go-medical-appointment/internal/converter"
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/repository"
	"go-medical-appointment/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type BlockedRangeUsecase interface {
	ListBlockedRanges(ctx context.Context, actor entity.Actor, from string) (*dto.BlockedRangeListResponse, error)
	CreateBlockedRange(ctx context.Context, actor entity.Actor, req *dto.CreateBlockedRangeRequest) (*dto.BlockedRangeResponse, error)
	DeleteBlockedRange(ctx context.Context, actor entity.Actor, id uuid.UUID) error
}

type blockedRangeUsecase struct {
	txManager    repository.TxManager
	log          *logrus.Logger
	blockedRepo  repository.BlockedRangeRepository
	auditService service.AuditService
}

func NewBlockedRangeUsecase(
	txManager repository.TxManager,
	log *logrus.Logger,
	blockedRepo repository.BlockedRangeRepository,
	auditService service.AuditService,
) BlockedRangeUsecase {
	return &blockedRangeUsecase{
		txManager:    txManager,
		log:          log,
		blockedRepo:  blockedRepo,
		auditService: auditService,
	}
}

// ListBlockedRanges lists the doctor's blocked ranges on or after from; empty from lists all
func (u *blockedRangeUsecase) ListBlockedRanges(ctx context.Context, actor entity.Actor, from string) (*dto.BlockedRangeListResponse, error) {
	if from != "" {
		day, err := parseDate(from)
		if err != nil {
			return nil, err
		}
		from = day.Format(entity.DateLayout)
	}

	ranges, err := u.blockedRepo.FindByDoctorID(ctx, u.txManager.DB(ctx), actor.UserID, from)
	if err != nil {
		u.log.Warnf("Failed to find blocked ranges: %+v", err)
		return nil, err
	}

	return &dto.BlockedRangeListResponse{
		BlockedSlots: converter.BlockedRangesToResponses(ranges),
		Total:        len(ranges),
	}, nil
}

func (u *blockedRangeUsecase) CreateBlockedRange(ctx context.Context, actor entity.Actor, req *dto.CreateBlockedRangeRequest) (*dto.BlockedRangeResponse, error) {
	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	r, err := parseSlotRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	blocked := &entity.BlockedRange{
		ID:        uuid.New(),
		DoctorID:  actor.UserID,
		Date:      day,
		StartTime: r.Start.String(),
		EndTime:   r.End.String(),
		Reason:    strings.TrimSpace(req.Reason),
	}

	err = u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.blockedRepo.Create(ctx, tx, blocked); err != nil {
			return err
		}
		userID := actor.UserID
		if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionBlockedRangeCreate, "blocked_range", blocked.ID.String(), blocked); err != nil {
			u.log.Warnf("Audit skipped for blocked range %s: %+v", blocked.ID, err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to create blocked range: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"doctor_id":  blocked.DoctorID,
		"date":       req.Date,
		"start_time": blocked.StartTime,
		"end_time":   blocked.EndTime,
	}).Info("Blocked range created")
	return converter.BlockedRangeToResponse(blocked), nil
}

func (u *blockedRangeUsecase) DeleteBlockedRange(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	blocked, err := u.blockedRepo.FindByID(ctx, u.txManager.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find blocked range: %+v", err)
		return err
	}
	if blocked == nil {
		return ErrBlockedRangeNotFound
	}
	if blocked.DoctorID != actor.UserID {
		return ErrNotResourceOwner
	}

	err = u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		affected, err := u.blockedRepo.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrBlockedRangeNotFound
		}
		userID := actor.UserID
		if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionBlockedRangeDelete, "blocked_range", id.String(), blocked); err != nil {
			u.log.Warnf("Audit skipped for blocked range %s: %+v", id, err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to delete blocked range %s: %+v", id, err)
		return err
	}
	return nil
}
