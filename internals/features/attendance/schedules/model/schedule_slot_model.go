package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ScheduleSlotModel — jadwal latihan mingguan per cabang. Immutable dalam satu
// window bulanan; perubahan hanya berlaku untuk instance ke depan (soft delete
// + buat slot baru).
type ScheduleSlotModel struct {
	ScheduleSlotID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:schedule_slot_id" json:"schedule_slot_id"`

	ScheduleSlotBranchID uuid.UUID `gorm:"type:uuid;not null;index;column:schedule_slot_branch_id" json:"schedule_slot_branch_id"`

	ScheduleSlotAgeGroup string         `gorm:"not null;column:schedule_slot_age_group" json:"schedule_slot_age_group"`
	ScheduleSlotLevels   pq.StringArray `gorm:"type:text[];column:schedule_slot_levels" json:"schedule_slot_levels,omitempty"`

	// 0 = Minggu .. 6 = Sabtu (mengikuti time.Weekday)
	ScheduleSlotWeekday   int     `gorm:"not null;column:schedule_slot_weekday"    json:"schedule_slot_weekday"`
	ScheduleSlotStartTime string  `gorm:"type:time;column:schedule_slot_start_time" json:"schedule_slot_start_time"`
	ScheduleSlotEndTime   string  `gorm:"type:time;column:schedule_slot_end_time"   json:"schedule_slot_end_time"`
	ScheduleSlotLocation  *string `gorm:"column:schedule_slot_location"             json:"schedule_slot_location,omitempty"`

	ScheduleSlotCreatedAt time.Time      `gorm:"column:schedule_slot_created_at;autoCreateTime" json:"schedule_slot_created_at"`
	ScheduleSlotUpdatedAt *time.Time     `gorm:"column:schedule_slot_updated_at;autoUpdateTime" json:"schedule_slot_updated_at,omitempty"`
	ScheduleSlotDeletedAt gorm.DeletedAt `gorm:"column:schedule_slot_deleted_at;index"          json:"schedule_slot_deleted_at,omitempty"`
}

func (ScheduleSlotModel) TableName() string { return "schedule_slots" }
