package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "silatku_backend/internals/features/attendance/schedules/controller"
)

// ScheduleAdminRoutes — group /api/a
func ScheduleAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewScheduleSlotController(db)

	slots := api.Group("/schedule-slots")
	slots.Post("/", ctrl.CreateScheduleSlot)
	slots.Get("/", ctrl.GetScheduleSlots)
	slots.Delete("/:id", ctrl.DeleteScheduleSlot)

	api.Get("/sessions", ctrl.GetSessions)
}
