package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordController "silatku_backend/internals/features/attendance/records/controller"
)

// AttendanceRecordAdminRoutes — group /api/a
func AttendanceRecordAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := recordController.NewAttendanceRecordController(db)

	api.Post("/attendance", ctrl.CreateAttendance)
	api.Post("/admin-attendance", ctrl.CreateAdminAttendance)
}
