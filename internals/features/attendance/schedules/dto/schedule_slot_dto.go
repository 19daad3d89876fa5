// file: internals/features/attendance/schedules/dto/schedule_slot_dto.go
package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"silatku_backend/internals/features/attendance/schedules/model"
)

type CreateScheduleSlotRequest struct {
	ScheduleSlotBranchID uuid.UUID `json:"schedule_slot_branch_id" validate:"required"`
	ScheduleSlotAgeGroup string    `json:"schedule_slot_age_group" validate:"required,max=40"`
	ScheduleSlotLevels   []string  `json:"schedule_slot_levels"    validate:"omitempty,dive,max=40"`

	ScheduleSlotWeekday   int     `json:"schedule_slot_weekday"    validate:"min=0,max=6"`
	ScheduleSlotStartTime string  `json:"schedule_slot_start_time" validate:"required,datetime=15:04"`
	ScheduleSlotEndTime   string  `json:"schedule_slot_end_time"   validate:"required,datetime=15:04"`
	ScheduleSlotLocation  *string `json:"schedule_slot_location"   validate:"omitempty,max=160"`
}

func (r *CreateScheduleSlotRequest) ToModel() *model.ScheduleSlotModel {
	return &model.ScheduleSlotModel{
		ScheduleSlotBranchID:  r.ScheduleSlotBranchID,
		ScheduleSlotAgeGroup:  r.ScheduleSlotAgeGroup,
		ScheduleSlotLevels:    pq.StringArray(r.ScheduleSlotLevels),
		ScheduleSlotWeekday:   r.ScheduleSlotWeekday,
		ScheduleSlotStartTime: r.ScheduleSlotStartTime,
		ScheduleSlotEndTime:   r.ScheduleSlotEndTime,
		ScheduleSlotLocation:  r.ScheduleSlotLocation,
	}
}
