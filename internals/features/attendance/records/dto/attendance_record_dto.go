// file: internals/features/attendance/records/dto/attendance_record_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"silatku_backend/internals/features/attendance/records/model"
)

type AttendanceEntry struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	Status   string    `json:"status"    validate:"required,oneof=hadir sakit izin alpa"`
}

// CreateAttendanceRequest — absen satu sesi sekaligus (bulk per roll-call).
type CreateAttendanceRequest struct {
	SlotID uuid.UUID `json:"slot_id" validate:"required"`
	// "YYYY-MM-DD"
	Date    string            `json:"date"    validate:"required,datetime=2006-01-02"`
	Entries []AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

func (r *CreateAttendanceRequest) ToModels() ([]model.AttendanceRecordModel, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}
	out := make([]model.AttendanceRecordModel, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, model.AttendanceRecordModel{
			AttendanceRecordMemberID: e.MemberID,
			AttendanceRecordSlotID:   r.SlotID,
			AttendanceRecordDate:     date,
			AttendanceRecordStatus:   model.AttendanceStatus(e.Status),
		})
	}
	return out, nil
}

type CreateAdminAttendanceRequest struct {
	AdminID uuid.UUID `json:"admin_id" validate:"required"`
	SlotID  uuid.UUID `json:"slot_id"  validate:"required"`
	Date    string    `json:"date"     validate:"required,datetime=2006-01-02"`
	Status  string    `json:"status"   validate:"required,oneof=hadir sakit izin"`
	Notes   *string   `json:"notes"    validate:"omitempty,max=240"`
}

func (r *CreateAdminAttendanceRequest) ToModel() (*model.AdminAttendanceRecordModel, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}
	return &model.AdminAttendanceRecordModel{
		AdminAttendanceRecordAdminID: r.AdminID,
		AdminAttendanceRecordSlotID:  r.SlotID,
		AdminAttendanceRecordDate:    date,
		AdminAttendanceRecordStatus:  model.AdminAttendanceStatus(r.Status),
		AdminAttendanceRecordNotes:   r.Notes,
	}, nil
}
