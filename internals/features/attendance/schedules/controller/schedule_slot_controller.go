package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"silatku_backend/internals/features/attendance/schedules/dto"
	"silatku_backend/internals/features/attendance/schedules/model"
	"silatku_backend/internals/features/attendance/schedules/service"
	helper "silatku_backend/internals/helpers"
)

type ScheduleSlotController struct {
	DB *gorm.DB
}

func NewScheduleSlotController(db *gorm.DB) *ScheduleSlotController {
	return &ScheduleSlotController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/a/schedule-slots
func (ctrl *ScheduleSlotController) CreateScheduleSlot(c *fiber.Ctx) error {
	var req dto.CreateScheduleSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat slot jadwal")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Slot jadwal dibuat", m)
}

/* ===================== LIST ===================== */
// GET /api/a/schedule-slots?branch_id=
func (ctrl *ScheduleSlotController) GetScheduleSlots(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(c.Query("branch_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "branch_id tidak valid")
	}

	var slots []model.ScheduleSlotModel
	if err := ctrl.DB.
		Where("schedule_slot_branch_id = ?", branchID).
		Order("schedule_slot_weekday asc, schedule_slot_start_time asc").
		Find(&slots).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return helper.Success(c, "Slot jadwal", slots)
}

/* ===================== DELETE (soft) ===================== */
// DELETE /api/a/schedule-slots/:id — perubahan jadwal hanya berlaku ke depan
func (ctrl *ScheduleSlotController) DeleteScheduleSlot(c *fiber.Ctx) error {
	slotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "slot_id tidak valid")
	}

	res := ctrl.DB.Delete(&model.ScheduleSlotModel{}, "schedule_slot_id = ?", slotID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Slot jadwal tidak ditemukan")
	}
	return helper.Success(c, "Slot jadwal dihapus", nil)
}

/* ===================== SESSIONS ===================== */
// GET /api/a/sessions?branch_id=&month=&year= — expand jadwal jadi sesi bertanggal
func (ctrl *ScheduleSlotController) GetSessions(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(c.Query("branch_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "branch_id tidak valid")
	}
	month, year, err := helper.ResolveMonthYear(c)
	if err != nil {
		return err
	}

	var slots []model.ScheduleSlotModel
	if err := ctrl.DB.
		Where("schedule_slot_branch_id = ?", branchID).
		Find(&slots).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	sessions := service.InstantiateSessions(slots, month, year)
	return helper.Success(c, "Sesi latihan", sessions)
}
