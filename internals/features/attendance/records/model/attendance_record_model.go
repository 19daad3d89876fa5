package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendanceHadir AttendanceStatus = "hadir"
	AttendanceSakit AttendanceStatus = "sakit"
	AttendanceIzin  AttendanceStatus = "izin"
	AttendanceAlpa  AttendanceStatus = "alpa"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceHadir, AttendanceSakit, AttendanceIzin, AttendanceAlpa:
		return true
	default:
		return false
	}
}

// AttendanceRecordModel — absensi anggota per sesi. Maksimal satu record per
// (member, slot, tanggal); anggota tanpa record = "belum diabsen", bucket
// tersendiri, BUKAN alpa.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordMemberID uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_member_id;uniqueIndex:uq_attendance_member_session" json:"attendance_record_member_id"`
	AttendanceRecordSlotID   uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_record_slot_id;uniqueIndex:uq_attendance_member_session" json:"attendance_record_slot_id"`
	AttendanceRecordDate     time.Time `gorm:"type:date;not null;column:attendance_record_date;uniqueIndex:uq_attendance_member_session" json:"attendance_record_date"`

	AttendanceRecordStatus AttendanceStatus `gorm:"type:varchar(8);not null;column:attendance_record_status" json:"attendance_record_status"`

	AttendanceRecordRecordedAt time.Time `gorm:"column:attendance_record_recorded_at;autoCreateTime" json:"attendance_record_recorded_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
