package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "silatku_backend/internals/features/billing/payments/controller"
)

// PaymentUserRoutes — dipasang di group /api/u (JWT)
func PaymentUserRoutes(api fiber.Router, db *gorm.DB) {
	proofCtrl := paymentController.NewPaymentProofController(db)
	billingCtrl := paymentController.NewBillingStateController(db)

	api.Post("/payment-proofs", proofCtrl.UploadPaymentProof)
	api.Get("/members/:id/billing-state", billingCtrl.GetBillingState)
}

// PaymentAdminRoutes — dipasang di group /api/a (JWT + role admin)
func PaymentAdminRoutes(api fiber.Router, db *gorm.DB) {
	proofCtrl := paymentController.NewPaymentProofController(db)

	api.Post("/payment-proofs/:id/verify", proofCtrl.VerifyPaymentProof)
	api.Get("/members/:id/payment-proofs", proofCtrl.GetProofsByMember)
}
