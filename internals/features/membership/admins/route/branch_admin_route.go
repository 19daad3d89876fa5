package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "silatku_backend/internals/features/membership/admins/controller"
)

// BranchAdminAdminRoutes — group /api/a
func BranchAdminAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewBranchAdminController(db)
	api.Get("/branches/:id/admins", ctrl.GetAdminsByBranch)
}

// BranchAdminOwnerRoutes — group /api/o
func BranchAdminOwnerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewBranchAdminController(db)
	api.Post("/branch-admins", ctrl.CreateBranchAdmin)
}
