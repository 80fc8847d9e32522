package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFamilyMemberRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Relation    string `json:"relation" validate:"required,max=50"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,date"`
	Gender      string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	BloodGroup  string `json:"blood_group" validate:"omitempty,max=5"`
	Allergies   string `json:"allergies" validate:"omitempty"`
}

type FamilyMemberResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	Name        string    `json:"name"`
	Relation    string    `json:"relation"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	BloodGroup  string    `json:"blood_group,omitempty"`
	Allergies   string    `json:"allergies,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type FamilyMemberListResponse struct {
	FamilyMembers []FamilyMemberResponse `json:"family_members"`
	Total         int                    `json:"total"`
}
