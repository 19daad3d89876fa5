package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"silatku_backend/internals/features/billing/payments/model"
	"silatku_backend/internals/features/billing/payments/service"
	memberModel "silatku_backend/internals/features/membership/members/model"
	helper "silatku_backend/internals/helpers"
)

type BillingStateController struct {
	DB *gorm.DB
}

func NewBillingStateController(db *gorm.DB) *BillingStateController {
	return &BillingStateController{DB: db}
}

// GET /api/u/members/:id/billing-state
// Status dihitung ulang setiap request — tidak ada cache yang bisa basi
// terhadap mutasi proof/member.
func (ctrl *BillingStateController) GetBillingState(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "member_id tidak valid")
	}

	var member memberModel.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", memberID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	var proofs []model.PaymentProofModel
	if err := ctrl.DB.
		Where("payment_proof_member_id = ? AND payment_proof_month = ? AND payment_proof_year = ?",
			memberID, int(now.Month()), now.Year()).
		Find(&proofs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil bukti pembayaran")
	}

	state := service.ComputeBillingState(member, proofs, now)
	return helper.Success(c, "Status iuran", state)
}
