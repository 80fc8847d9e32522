package handler

import (
	"encoding/json"
	"net/http"

	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/usecase"
	"go-medical-appointment/pkg/response"
	"go-medical-appointment/pkg/validator"
)

type BlockedRangeHandler struct {
	blockedRangeUsecase usecase.BlockedRangeUsecase
	validator           *validator.CustomValidator
}

func NewBlockedRangeHandler(blockedRangeUsecase usecase.BlockedRangeUsecase, validator *validator.CustomValidator) *BlockedRangeHandler {
	return &BlockedRangeHandler{
		blockedRangeUsecase: blockedRangeUsecase,
		validator:           validator,
	}
}

// ListBlockedSlots handles GET /doctor/blocked-slots?from=YYYY-MM-DD
func (h *BlockedRangeHandler) ListBlockedSlots(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	blocked, err := h.blockedRangeUsecase.ListBlockedRanges(r.Context(), actor, r.URL.Query().Get("from"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Blocked slots retrieved successfully", blocked)
}

func (h *BlockedRangeHandler) CreateBlockedSlot(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	var req dto.CreateBlockedRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	blocked, err := h.blockedRangeUsecase.CreateBlockedRange(r.Context(), actor, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Blocked slot created successfully", blocked)
}

func (h *BlockedRangeHandler) DeleteBlockedSlot(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", "blocked slot")
	if !ok {
		return
	}

	if err := h.blockedRangeUsecase.DeleteBlockedRange(r.Context(), actor, id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Blocked slot deleted successfully", nil)
}
