package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminAttendanceStatus string

// Admin tidak punya "alpa": admin tanpa record untuk sebuah sesi masuk bucket
// absent_admins di agregasi, bukan status tersendiri.
const (
	AdminAttendanceHadir AdminAttendanceStatus = "hadir"
	AdminAttendanceSakit AdminAttendanceStatus = "sakit"
	AdminAttendanceIzin  AdminAttendanceStatus = "izin"
)

func (s AdminAttendanceStatus) Valid() bool {
	switch s {
	case AdminAttendanceHadir, AdminAttendanceSakit, AdminAttendanceIzin:
		return true
	default:
		return false
	}
}

type AdminAttendanceRecordModel struct {
	AdminAttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admin_attendance_record_id" json:"admin_attendance_record_id"`

	AdminAttendanceRecordAdminID uuid.UUID `gorm:"type:uuid;not null;column:admin_attendance_record_admin_id;uniqueIndex:uq_admin_attendance_session" json:"admin_attendance_record_admin_id"`
	AdminAttendanceRecordSlotID  uuid.UUID `gorm:"type:uuid;not null;index;column:admin_attendance_record_slot_id;uniqueIndex:uq_admin_attendance_session" json:"admin_attendance_record_slot_id"`
	AdminAttendanceRecordDate    time.Time `gorm:"type:date;not null;column:admin_attendance_record_date;uniqueIndex:uq_admin_attendance_session" json:"admin_attendance_record_date"`

	AdminAttendanceRecordStatus AdminAttendanceStatus `gorm:"type:varchar(8);not null;column:admin_attendance_record_status" json:"admin_attendance_record_status"`
	AdminAttendanceRecordNotes  *string               `gorm:"column:admin_attendance_record_notes" json:"admin_attendance_record_notes,omitempty"`

	AdminAttendanceRecordCreatedAt time.Time `gorm:"column:admin_attendance_record_created_at;autoCreateTime" json:"admin_attendance_record_created_at"`
}

func (AdminAttendanceRecordModel) TableName() string { return "admin_attendance_records" }
