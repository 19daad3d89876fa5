// file: internals/features/attendance/summary/service/aggregation_service.go
//
// Satu-satunya tempat hitung rekap kehadiran — semua view (rekap cabang,
// dashboard, drill-down) memakai algoritma yang sama.
//
// Anggota dipartisi ke LIMA bucket saling lepas: hadir, sakit, izin, alpa,
// dan belum-diabsen (unrecorded). Jumlah kelimanya selalu = jumlah anggota
// aktif. Admin hanya dibelah dua: sudah absen vs belum.
package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	recordModel "silatku_backend/internals/features/attendance/records/model"
	scheduleService "silatku_backend/internals/features/attendance/schedules/service"
	adminModel "silatku_backend/internals/features/membership/admins/model"
	memberModel "silatku_backend/internals/features/membership/members/model"
)

// Bucket drill-down di luar empat status record + unrecorded.
const (
	StatusUnrecorded      = "unrecorded"
	BucketAdminAttendance = "admin_attendance"
	BucketAbsentAdmins    = "absent_admins"
)

var ErrUnknownStatus = errors.New("status drill-down tidak dikenal")

type MemberCounts struct {
	Hadir      int `json:"hadir"`
	Sakit      int `json:"sakit"`
	Izin       int `json:"izin"`
	Alpa       int `json:"alpa"`
	Unrecorded int `json:"unrecorded"`
}

func (mc MemberCounts) Total() int {
	return mc.Hadir + mc.Sakit + mc.Izin + mc.Alpa + mc.Unrecorded
}

// MemberSummary — satu baris hasil drill-down.
type MemberSummary struct {
	MemberID   uuid.UUID  `json:"member_id"`
	FullName   string     `json:"full_name"`
	Status     string     `json:"status"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
}

type AdminAttendee struct {
	AdminID  uuid.UUID `json:"admin_id"`
	FullName string    `json:"full_name"`
	Status   string    `json:"status"`
	Notes    *string   `json:"notes,omitempty"`
}

type AbsentAdmin struct {
	AdminID  uuid.UUID `json:"admin_id"`
	FullName string    `json:"full_name"`
}

// AttendanceTimeInfo — check-in pertama & terakhir; dua-duanya null kalau
// sesi sama sekali belum ada absensi (anomali yang perlu terlihat).
type AttendanceTimeInfo struct {
	First *time.Time `json:"first"`
	Last  *time.Time `json:"last"`
}

type SessionSummary struct {
	SessionKey string    `json:"session_key"`
	Date       time.Time `json:"date"`
	AgeGroup   string    `json:"age_group"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`

	MemberCounts       MemberCounts       `json:"member_counts"`
	AdminAttendance    []AdminAttendee    `json:"admin_attendance"`
	AbsentAdmins       []AbsentAdmin      `json:"absent_admins"`
	AttendanceTimeInfo AttendanceTimeInfo `json:"attendance_time_info"`
}

// Summarize merekap satu sesi dari populasi anggota aktif + record yang ada.
// records/adminRecords boleh berisi data sesi lain; yang tidak cocok dengan
// instance diabaikan.
func Summarize(
	instance scheduleService.SessionInstance,
	activeMembers []memberModel.MemberModel,
	records []recordModel.AttendanceRecordModel,
	adminRecords []recordModel.AdminAttendanceRecordModel,
	branchAdmins []adminModel.BranchAdminModel,
) SessionSummary {
	byMember := indexMemberRecords(instance, records)

	// --- lima bucket anggota ---
	var counts MemberCounts
	for i := range activeMembers {
		rec, ok := byMember[activeMembers[i].MemberID]
		if !ok {
			counts.Unrecorded++
			continue
		}
		switch rec.AttendanceRecordStatus {
		case recordModel.AttendanceHadir:
			counts.Hadir++
		case recordModel.AttendanceSakit:
			counts.Sakit++
		case recordModel.AttendanceIzin:
			counts.Izin++
		case recordModel.AttendanceAlpa:
			counts.Alpa++
		default:
			// status asing dari data lama: jangan hilangkan anggotanya
			log.Printf("⚠️ status absensi tidak dikenal %q, dihitung unrecorded", rec.AttendanceRecordStatus)
			counts.Unrecorded++
		}
	}

	// --- admin: biner, bukan lima bucket ---
	byAdmin := indexAdminRecords(instance, adminRecords)
	attendance := make([]AdminAttendee, 0, len(byAdmin))
	absent := make([]AbsentAdmin, 0)
	for i := range branchAdmins {
		a := &branchAdmins[i]
		if rec, ok := byAdmin[a.BranchAdminID]; ok {
			attendance = append(attendance, AdminAttendee{
				AdminID:  a.BranchAdminID,
				FullName: a.BranchAdminFullName,
				Status:   string(rec.AdminAttendanceRecordStatus),
				Notes:    rec.AdminAttendanceRecordNotes,
			})
		} else {
			absent = append(absent, AbsentAdmin{
				AdminID:  a.BranchAdminID,
				FullName: a.BranchAdminFullName,
			})
		}
	}

	// --- check-in pertama & terakhir ---
	var timeInfo AttendanceTimeInfo
	for _, rec := range byMember {
		t := rec.AttendanceRecordRecordedAt
		if timeInfo.First == nil || t.Before(*timeInfo.First) {
			tt := t
			timeInfo.First = &tt
		}
		if timeInfo.Last == nil || t.After(*timeInfo.Last) {
			tt := t
			timeInfo.Last = &tt
		}
	}

	return SessionSummary{
		SessionKey:         instance.Key(),
		Date:               instance.Date,
		AgeGroup:           instance.AgeGroup,
		StartTime:          instance.StartTime,
		EndTime:            instance.EndTime,
		MemberCounts:       counts,
		AdminAttendance:    attendance,
		AbsentAdmins:       absent,
		AttendanceTimeInfo: timeInfo,
	}
}

// ResolveMembers mengembalikan daftar anggota di balik satu angka rekap.
// Dihitung on-demand per request — tidak pernah di-join eager ke summary —
// dan konsisten dengan Summarize untuk snapshot data yang sama.
func ResolveMembers(
	instance scheduleService.SessionInstance,
	status string,
	activeMembers []memberModel.MemberModel,
	records []recordModel.AttendanceRecordModel,
) ([]MemberSummary, error) {
	if status != StatusUnrecorded && !recordModel.AttendanceStatus(status).Valid() {
		return nil, ErrUnknownStatus
	}

	byMember := indexMemberRecords(instance, records)
	out := make([]MemberSummary, 0)
	for i := range activeMembers {
		m := &activeMembers[i]
		rec, ok := byMember[m.MemberID]

		effective := StatusUnrecorded
		var recordedAt *time.Time
		if ok {
			if rec.AttendanceRecordStatus.Valid() {
				effective = string(rec.AttendanceRecordStatus)
			}
			if effective != StatusUnrecorded {
				t := rec.AttendanceRecordRecordedAt
				recordedAt = &t
			}
		}
		if effective != status {
			continue
		}
		out = append(out, MemberSummary{
			MemberID:   m.MemberID,
			FullName:   m.MemberFullName,
			Status:     effective,
			RecordedAt: recordedAt,
		})
	}
	return out, nil
}

// ResolveAdmins — drill-down untuk dua bucket admin.
func ResolveAdmins(
	instance scheduleService.SessionInstance,
	bucket string,
	branchAdmins []adminModel.BranchAdminModel,
	adminRecords []recordModel.AdminAttendanceRecordModel,
) (interface{}, error) {
	summary := Summarize(instance, nil, nil, adminRecords, branchAdmins)
	switch bucket {
	case BucketAdminAttendance:
		return summary.AdminAttendance, nil
	case BucketAbsentAdmins:
		return summary.AbsentAdmins, nil
	default:
		return nil, ErrUnknownStatus
	}
}

/* ===============================
   Index helpers
=================================*/

func indexMemberRecords(instance scheduleService.SessionInstance, records []recordModel.AttendanceRecordModel) map[uuid.UUID]*recordModel.AttendanceRecordModel {
	byMember := make(map[uuid.UUID]*recordModel.AttendanceRecordModel, len(records))
	for i := range records {
		r := &records[i]
		if r.AttendanceRecordSlotID != instance.ScheduleSlotID || !sameDate(r.AttendanceRecordDate, instance.Date) {
			continue
		}
		byMember[r.AttendanceRecordMemberID] = r
	}
	return byMember
}

func indexAdminRecords(instance scheduleService.SessionInstance, records []recordModel.AdminAttendanceRecordModel) map[uuid.UUID]*recordModel.AdminAttendanceRecordModel {
	byAdmin := make(map[uuid.UUID]*recordModel.AdminAttendanceRecordModel, len(records))
	for i := range records {
		r := &records[i]
		if r.AdminAttendanceRecordSlotID != instance.ScheduleSlotID || !sameDate(r.AdminAttendanceRecordDate, instance.Date) {
			continue
		}
		byAdmin[r.AdminAttendanceRecordAdminID] = r
	}
	return byAdmin
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
