package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberController "silatku_backend/internals/features/membership/members/controller"
)

// MemberAdminRoutes — dipasang di group /api/a (JWT + role admin)
func MemberAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := memberController.NewMemberController(db)

	members := api.Group("/members")
	members.Get("/", ctrl.GetMembers)
	members.Post("/", ctrl.CreateMember)
	members.Get("/:id", ctrl.GetMemberByID)
	members.Patch("/:id", ctrl.UpdateMember)
}
