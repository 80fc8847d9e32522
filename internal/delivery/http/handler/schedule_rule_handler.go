package handler

import (
	"encoding/json"
	"net/http"

	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/usecase"
	"go-medical-appointment/pkg/response"
	"go-medical-appointment/pkg/validator"
)

type ScheduleRuleHandler struct {
	scheduleUsecase usecase.ScheduleRuleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleRuleHandler(scheduleUsecase usecase.ScheduleRuleUsecase, validator *validator.CustomValidator) *ScheduleRuleHandler {
	return &ScheduleRuleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *ScheduleRuleHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	schedules, err := h.scheduleUsecase.ListRules(r.Context(), actor)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}

func (h *ScheduleRuleHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	var req dto.CreateScheduleRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.CreateRule(r.Context(), actor, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Schedule created successfully", schedule)
}

func (h *ScheduleRuleHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	scheduleID, ok := pathUUID(w, r, "id", "schedule")
	if !ok {
		return
	}

	var req dto.UpdateScheduleRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.UpdateRule(r.Context(), actor, scheduleID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedule updated successfully", schedule)
}

func (h *ScheduleRuleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	scheduleID, ok := pathUUID(w, r, "id", "schedule")
	if !ok {
		return
	}

	if err := h.scheduleUsecase.DeleteRule(r.Context(), actor, scheduleID); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedule deleted successfully", nil)
}
