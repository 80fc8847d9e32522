package converter

import (
	"time"

	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/slot"
)

// ScheduleRuleToResponse converts a ScheduleRule entity to ScheduleRuleResponse DTO
func ScheduleRuleToResponse(rule *entity.ScheduleRule) *dto.ScheduleRuleResponse {
	if rule == nil {
		return nil
	}

	response := &dto.ScheduleRuleResponse{
		ID:           rule.ID,
		DoctorID:     rule.DoctorID,
		DayOfWeek:    rule.DayOfWeek,
		DayName:      time.Weekday(rule.DayOfWeek).String(),
		StartTime:    rule.StartTime,
		EndTime:      rule.EndTime,
		SlotDuration: rule.SlotDuration,
		IsActive:     rule.IsActive,
		CreatedAt:    rule.CreatedAt,
		UpdatedAt:    rule.UpdatedAt,
	}

	start, errStart := slot.ParseClock(rule.StartTime)
	end, errEnd := slot.ParseClock(rule.EndTime)
	if errStart == nil && errEnd == nil {
		if slots, err := slot.Generate(start, end, rule.SlotDuration); err == nil {
			response.SlotCount = len(slots)
		}
	}

	return response
}

func ScheduleRulesToResponses(rules []entity.ScheduleRule) []dto.ScheduleRuleResponse {
	responses := make([]dto.ScheduleRuleResponse, len(rules))
	for i := range rules {
		responses[i] = *ScheduleRuleToResponse(&rules[i])
	}
	return responses
}

// BlockedRangeToResponse converts a BlockedRange entity to BlockedRangeResponse DTO
func BlockedRangeToResponse(blocked *entity.BlockedRange) *dto.BlockedRangeResponse {
	if blocked == nil {
		return nil
	}
	return &dto.BlockedRangeResponse{
		ID:        blocked.ID,
		DoctorID:  blocked.DoctorID,
		Date:      blocked.Date.Format(entity.DateLayout),
		StartTime: blocked.StartTime,
		EndTime:   blocked.EndTime,
		Reason:    blocked.Reason,
		CreatedAt: blocked.CreatedAt,
	}
}

func BlockedRangesToResponses(ranges []entity.BlockedRange) []dto.BlockedRangeResponse {
	responses := make([]dto.BlockedRangeResponse, len(ranges))
	for i := range ranges {
		responses[i] = *BlockedRangeToResponse(&ranges[i])
	}
	return responses
}

// SlotsToResponses renders annotated slots in generator order
func SlotsToResponses(slots []slot.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, s := range slots {
		responses[i] = dto.SlotResponse{
			StartTime:   s.Start.String(),
			EndTime:     s.End.String(),
			IsAvailable: s.Available,
		}
	}
	return responses
}
