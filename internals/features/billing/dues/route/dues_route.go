package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	duesController "silatku_backend/internals/features/billing/dues/controller"
)

// DuesUserRoutes — group /api/u
func DuesUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := duesController.NewDuesController(db)
	api.Post("/dues/checkout", ctrl.CheckoutDues)
}

// DuesPublicRoutes — webhook Midtrans (tanpa JWT, diverifikasi signature)
func DuesPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := duesController.NewDuesController(db)
	api.Post("/dues/notification", ctrl.HandleMidtransNotification)
}
