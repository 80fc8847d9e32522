package usecase

import (
	"context"
	"strings"
	"time"

	"go-medical-appointment/internal/converter"
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/repository"
	"go-medical-appointment/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FamilyMemberUsecase interface {
	ListFamilyMembers(ctx context.Context, actor entity.Actor) (*dto.FamilyMemberListResponse, error)
	CreateFamilyMember(ctx context.Context, actor entity.Actor, req *dto.CreateFamilyMemberRequest) (*dto.FamilyMemberResponse, error)
	DeleteFamilyMember(ctx context.Context, actor entity.Actor, id uuid.UUID) error
}

type familyMemberUsecase struct {
	txManager        repository.TxManager
	log              *logrus.Logger
	familyMemberRepo repository.FamilyMemberRepository
	patientRepo      repository.PatientProfileRepository
	auditService     service.AuditService
}

func NewFamilyMemberUsecase(
	txManager repository.TxManager,
	log *logrus.Logger,
	familyMemberRepo repository.FamilyMemberRepository,
	patientRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) FamilyMemberUsecase {
	return &familyMemberUsecase{
		txManager:        txManager,
		log:              log,
		familyMemberRepo: familyMemberRepo,
		patientRepo:      patientRepo,
		auditService:     auditService,
	}
}

func (u *familyMemberUsecase) ListFamilyMembers(ctx context.Context, actor entity.Actor) (*dto.FamilyMemberListResponse, error) {
	members, err := u.familyMemberRepo.FindByPatientID(ctx, u.txManager.DB(ctx), actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find family members: %+v", err)
		return nil, err
	}

	return &dto.FamilyMemberListResponse{
		FamilyMembers: converter.FamilyMembersToResponses(members),
		Total:         len(members),
	}, nil
}

func (u *familyMemberUsecase) CreateFamilyMember(ctx context.Context, actor entity.Actor, req *dto.CreateFamilyMemberRequest) (*dto.FamilyMemberResponse, error) {
	var dob *time.Time
	if req.DateOfBirth != "" {
		day, err := parseDate(req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		dob = &day
	}

	patient, err := u.patientRepo.FindByUserID(ctx, u.txManager.DB(ctx), actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	member := &entity.FamilyMember{
		ID:          uuid.New(),
		PatientID:   actor.UserID,
		Name:        strings.TrimSpace(req.Name),
		Relation:    strings.TrimSpace(req.Relation),
		DateOfBirth: dob,
		Gender:      strings.ToUpper(req.Gender),
		BloodGroup:  strings.ToUpper(req.BloodGroup),
		Allergies:   req.Allergies,
	}

	err = u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.familyMemberRepo.Create(ctx, tx, member); err != nil {
			return err
		}
		userID := actor.UserID
		if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionFamilyMemberCreate, "family_member", member.ID.String(), member); err != nil {
			u.log.Warnf("Audit skipped for family member %s: %+v", member.ID, err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to create family member: %+v", err)
		return nil, err
	}

	return converter.FamilyMemberToResponse(member), nil
}

func (u *familyMemberUsecase) DeleteFamilyMember(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	member, err := u.familyMemberRepo.FindByID(ctx, u.txManager.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find family member: %+v", err)
		return err
	}
	if member == nil {
		return ErrFamilyMemberNotFound
	}
	if member.PatientID != actor.UserID {
		return ErrFamilyMemberNotOwned
	}

	err = u.txManager.WithinTransaction(ctx, func(tx *gorm.DB) error {
		affected, err := u.familyMemberRepo.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrFamilyMemberNotFound
		}
		userID := actor.UserID
		if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionFamilyMemberDelete, "family_member", id.String(), member); err != nil {
			u.log.Warnf("Audit skipped for family member %s: %+v", id, err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to delete family member %s: %+v", id, err)
		return err
	}
	return nil
}
