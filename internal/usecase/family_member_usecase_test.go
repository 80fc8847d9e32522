package usecase

import (
	"context"
	"errors"
	"testing"

	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"

	"github.com/google/uuid"
)

func TestCreateFamilyMember(t *testing.T) {
	f := newFixture(t, friday)
	uc := f.familyMembers()

	got, err := uc.CreateFamilyMember(context.Background(), f.patient, &dto.CreateFamilyMemberRequest{
		Name:        " Ayu ",
		Relation:    "child",
		DateOfBirth: "2018-04-02",
		Gender:      "female",
		BloodGroup:  "o+",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Ayu" || got.PatientID != f.patient.UserID || got.Gender != "FEMALE" || got.BloodGroup != "O+" {
		t.Errorf("member = %+v", got)
	}
	if got.DateOfBirth != "2018-04-02" {
		t.Errorf("DateOfBirth = %q", got.DateOfBirth)
	}
	if actions := f.audit.actions(); len(actions) != 1 || actions[0] != entity.AuditActionFamilyMemberCreate {
		t.Errorf("audit actions = %v", actions)
	}

	list, err := uc.ListFamilyMembers(context.Background(), f.patient)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Total != 1 || list.FamilyMembers[0].ID != got.ID {
		t.Errorf("list = %+v", list)
	}
}

func TestCreateFamilyMember_Rejections(t *testing.T) {
	f := newFixture(t, friday)
	uc := f.familyMembers()

	if _, err := uc.CreateFamilyMember(context.Background(), f.patient, &dto.CreateFamilyMemberRequest{
		Name: "Ayu", Relation: "child", DateOfBirth: "02-04-2018",
	}); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}

	stranger := entity.Actor{UserID: uuid.New(), RoleID: entity.RoleIDPatient}
	if _, err := uc.CreateFamilyMember(context.Background(), stranger, &dto.CreateFamilyMemberRequest{
		Name: "Ayu", Relation: "child",
	}); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestDeleteFamilyMember(t *testing.T) {
	f := newFixture(t, friday)
	member := entity.FamilyMember{ID: uuid.New(), PatientID: f.patient.UserID, Name: "Ayu", Relation: "child"}
	f.store.family[member.ID] = member
	uc := f.familyMembers()

	if err := uc.DeleteFamilyMember(context.Background(), f.newPatient(), member.ID); !errors.Is(err, ErrFamilyMemberNotOwned) {
		t.Errorf("expected ErrFamilyMemberNotOwned, got %v", err)
	}
	if err := uc.DeleteFamilyMember(context.Background(), f.patient, uuid.New()); !errors.Is(err, ErrFamilyMemberNotFound) {
		t.Errorf("expected ErrFamilyMemberNotFound, got %v", err)
	}
	if err := uc.DeleteFamilyMember(context.Background(), f.patient, member.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := f.store.family[member.ID]; ok {
		t.Error("member should be deleted")
	}
}
