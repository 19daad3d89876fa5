package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	summaryController "silatku_backend/internals/features/attendance/summary/controller"
)

// SummaryAdminRoutes — group /api/a
func SummaryAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := summaryController.NewSummaryController(db)

	api.Get("/attendance-summary", ctrl.GetAttendanceSummary)
	api.Get("/session-attendees", ctrl.GetSessionAttendees)
}

// SummaryOwnerRoutes — group /api/o
func SummaryOwnerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := summaryController.NewSummaryController(db)

	api.Get("/dashboard/attendance", ctrl.GetDashboardAttendance)
}
