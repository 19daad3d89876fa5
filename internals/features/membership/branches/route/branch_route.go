package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	branchController "silatku_backend/internals/features/membership/branches/controller"
)

// BranchPublicRoutes — daftar cabang untuk halaman publik
func BranchPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := branchController.NewBranchController(db)

	branches := api.Group("/branches")
	branches.Get("/", ctrl.GetAllBranches)
	branches.Get("/:id", ctrl.GetBranchByID)
}
