package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	scheduleModel "silatku_backend/internals/features/attendance/schedules/model"

	"silatku_backend/internals/features/attendance/records/dto"
	helper "silatku_backend/internals/helpers"
)

type AttendanceRecordController struct {
	DB *gorm.DB
}

func NewAttendanceRecordController(db *gorm.DB) *AttendanceRecordController {
	return &AttendanceRecordController{DB: db}
}

/* ===================== ROLL-CALL ANGGOTA ===================== */
// POST /api/a/attendance — upsert, absen ulang menimpa status lama
func (ctrl *AttendanceRecordController) CreateAttendance(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Slot harus ada — session key yang tidak dikenal jangan diterima diam-diam.
	var slotCount int64
	if err := ctrl.DB.Model(&scheduleModel.ScheduleSlotModel{}).
		Where("schedule_slot_id = ?", req.SlotID).
		Count(&slotCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if slotCount == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Slot jadwal tidak ditemukan")
	}

	records, err := req.ToModels()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Tanggal tidak valid")
	}

	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_record_member_id"},
			{Name: "attendance_record_slot_id"},
			{Name: "attendance_record_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"attendance_record_status", "attendance_record_recorded_at"}),
	}).Create(&records).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Absensi tersimpan", fiber.Map{
		"saved": len(records),
	})
}

/* ===================== ABSEN ADMIN ===================== */
// POST /api/a/admin-attendance
func (ctrl *AttendanceRecordController) CreateAdminAttendance(c *fiber.Ctx) error {
	var req dto.CreateAdminAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	record, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Tanggal tidak valid")
	}

	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "admin_attendance_record_admin_id"},
			{Name: "admin_attendance_record_slot_id"},
			{Name: "admin_attendance_record_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"admin_attendance_record_status", "admin_attendance_record_notes"}),
	}).Create(record).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan absensi admin")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Absensi admin tersimpan", record)
}
