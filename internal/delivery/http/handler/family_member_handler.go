package handler

import (
	"encoding/json"
	"net/http"

	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/usecase"
	"go-medical-appointment/pkg/response"
	"go-medical-appointment/pkg/validator"
)

type FamilyMemberHandler struct {
	familyMemberUsecase usecase.FamilyMemberUsecase
	validator           *validator.CustomValidator
}

func NewFamilyMemberHandler(familyMemberUsecase usecase.FamilyMemberUsecase, validator *validator.CustomValidator) *FamilyMemberHandler {
	return &FamilyMemberHandler{
		familyMemberUsecase: familyMemberUsecase,
		validator:           validator,
	}
}

func (h *FamilyMemberHandler) ListFamilyMembers(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	members, err := h.familyMemberUsecase.ListFamilyMembers(r.Context(), actor)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Family members retrieved successfully", members)
}

func (h *FamilyMemberHandler) CreateFamilyMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	var req dto.CreateFamilyMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	member, err := h.familyMemberUsecase.CreateFamilyMember(r.Context(), actor, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Family member added successfully", member)
}

func (h *FamilyMemberHandler) DeleteFamilyMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", "family member")
	if !ok {
		return
	}

	if err := h.familyMemberUsecase.DeleteFamilyMember(r.Context(), actor, id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Family member deleted successfully", nil)
}
