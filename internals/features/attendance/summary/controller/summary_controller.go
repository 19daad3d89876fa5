package controller

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	recordModel "silatku_backend/internals/features/attendance/records/model"
	scheduleModel "silatku_backend/internals/features/attendance/schedules/model"
	scheduleService "silatku_backend/internals/features/attendance/schedules/service"
	"silatku_backend/internals/features/attendance/summary/service"
	adminModel "silatku_backend/internals/features/membership/admins/model"
	branchModel "silatku_backend/internals/features/membership/branches/model"
	memberModel "silatku_backend/internals/features/membership/members/model"
	helper "silatku_backend/internals/helpers"
	helperAuth "silatku_backend/internals/helpers/auth"
)

type SummaryController struct {
	DB *gorm.DB
}

func NewSummaryController(db *gorm.DB) *SummaryController {
	return &SummaryController{DB: db}
}

/* ===================== REKAP PER CABANG ===================== */
// GET /api/a/attendance-summary?branch_id=&month=&year=
func (ctrl *SummaryController) GetAttendanceSummary(c *fiber.Ctx) error {
	var branchID uuid.UUID
	if raw := c.Query("branch_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "branch_id tidak valid")
		}
		branchID = id
	} else {
		// Tanpa parameter: pakai scope cabang dari token admin.
		id, err := helperAuth.GetBranchIDFromToken(c)
		if err != nil {
			return err
		}
		branchID = id
	}
	month, year, err := helper.ResolveMonthYear(c)
	if err != nil {
		return err
	}

	var branch branchModel.BranchModel
	if err := ctrl.DB.First(&branch, "branch_id = ?", branchID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Cabang tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	summaries, err := ctrl.buildBranchSummaries(c.UserContext(), branchID, month, year)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Rekap kehadiran", summaries)
}

// buildBranchSummaries memuat satu snapshot data per cabang lalu merekap tiap
// sesi in-memory: satu query per store, bukan N+1 per sesi.
func (ctrl *SummaryController) buildBranchSummaries(ctx context.Context, branchID uuid.UUID, month, year int) ([]service.SessionSummary, error) {
	db := ctrl.DB.WithContext(ctx)

	var slots []scheduleModel.ScheduleSlotModel
	if err := db.
		Where("schedule_slot_branch_id = ?", branchID).
		Find(&slots).Error; err != nil {
		return nil, err
	}

	sessions := scheduleService.InstantiateSessions(slots, month, year)
	if len(sessions) == 0 {
		return []service.SessionSummary{}, nil
	}

	slotIDs := make([]uuid.UUID, 0, len(slots))
	for i := range slots {
		slotIDs = append(slotIDs, slots[i].ScheduleSlotID)
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	var members []memberModel.MemberModel
	if err := db.
		Where("member_branch_id = ? AND member_status = ?", branchID, memberModel.MemberStatusActive).
		Find(&members).Error; err != nil {
		return nil, err
	}

	var admins []adminModel.BranchAdminModel
	if err := db.
		Where("branch_admin_branch_id = ? AND branch_admin_is_active = ?", branchID, true).
		Find(&admins).Error; err != nil {
		return nil, err
	}

	var records []recordModel.AttendanceRecordModel
	if err := db.
		Where("attendance_record_slot_id IN ? AND attendance_record_date >= ? AND attendance_record_date < ?",
			slotIDs, first, next).
		Find(&records).Error; err != nil {
		return nil, err
	}

	var adminRecords []recordModel.AdminAttendanceRecordModel
	if err := db.
		Where("admin_attendance_record_slot_id IN ? AND admin_attendance_record_date >= ? AND admin_attendance_record_date < ?",
			slotIDs, first, next).
		Find(&adminRecords).Error; err != nil {
		return nil, err
	}

	summaries := make([]service.SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, service.Summarize(session, members, records, adminRecords, admins))
	}
	return summaries, nil
}

/* ===================== DRILL-DOWN ===================== */
// GET /api/a/session-attendees?session_key=&status=
// Daftar di balik angka rekap — dihitung on-demand, bukan ikut di response rekap.
func (ctrl *SummaryController) GetSessionAttendees(c *fiber.Ctx) error {
	slotID, date, err := scheduleService.ParseSessionKey(c.Query("session_key"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	status := c.Query("status")
	if status == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter status wajib diisi")
	}

	var slot scheduleModel.ScheduleSlotModel
	if err := ctrl.DB.First(&slot, "schedule_slot_id = ?", slotID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Key yang formatnya valid belum tentu menunjuk sesi yang pernah ada —
	// tanggal harus jatuh di weekday slot, bukan dikarang bebas.
	if !scheduleService.SlotHasSessionOn(slot, date) {
		return helper.Error(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}

	instance := scheduleService.SessionInstance{
		ScheduleSlotID: slot.ScheduleSlotID,
		BranchID:       slot.ScheduleSlotBranchID,
		Date:           date,
		AgeGroup:       slot.ScheduleSlotAgeGroup,
		StartTime:      slot.ScheduleSlotStartTime,
		EndTime:        slot.ScheduleSlotEndTime,
	}

	// Bucket admin?
	if status == service.BucketAdminAttendance || status == service.BucketAbsentAdmins {
		var admins []adminModel.BranchAdminModel
		if err := ctrl.DB.
			Where("branch_admin_branch_id = ? AND branch_admin_is_active = ?", slot.ScheduleSlotBranchID, true).
			Find(&admins).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		var adminRecords []recordModel.AdminAttendanceRecordModel
		if err := ctrl.DB.
			Where("admin_attendance_record_slot_id = ? AND admin_attendance_record_date = ?", slotID, date).
			Find(&adminRecords).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		result, err := service.ResolveAdmins(instance, status, admins, adminRecords)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.Success(c, "Drill-down admin", result)
	}

	// Lima bucket anggota.
	var members []memberModel.MemberModel
	if err := ctrl.DB.
		Where("member_branch_id = ? AND member_status = ?", slot.ScheduleSlotBranchID, memberModel.MemberStatusActive).
		Find(&members).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	var records []recordModel.AttendanceRecordModel
	if err := ctrl.DB.
		Where("attendance_record_slot_id = ? AND attendance_record_date = ?", slotID, date).
		Find(&records).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	result, err := service.ResolveMembers(instance, status, members, records)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "Drill-down anggota", result)
}
