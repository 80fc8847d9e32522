package converter

import (
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
)

// FamilyMemberToResponse converts a FamilyMember entity to FamilyMemberResponse DTO
func FamilyMemberToResponse(member *entity.FamilyMember) *dto.FamilyMemberResponse {
	if member == nil {
		return nil
	}

	response := &dto.FamilyMemberResponse{
		ID:         member.ID,
		PatientID:  member.PatientID,
		Name:       member.Name,
		Relation:   member.Relation,
		Gender:     member.Gender,
		BloodGroup: member.BloodGroup,
		Allergies:  member.Allergies,
		CreatedAt:  member.CreatedAt,
	}
	if member.DateOfBirth != nil {
		response.DateOfBirth = member.DateOfBirth.Format(entity.DateLayout)
	}
	return response
}

func FamilyMembersToResponses(members []entity.FamilyMember) []dto.FamilyMemberResponse {
	responses := make([]dto.FamilyMemberResponse, len(members))
	for i := range members {
		responses[i] = *FamilyMemberToResponse(&members[i])
	}
	return responses
}
