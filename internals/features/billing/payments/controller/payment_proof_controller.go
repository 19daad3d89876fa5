package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"silatku_backend/internals/features/billing/payments/dto"
	"silatku_backend/internals/features/billing/payments/model"
	"silatku_backend/internals/features/billing/payments/service"
	helper "silatku_backend/internals/helpers"
	helperAuth "silatku_backend/internals/helpers/auth"
)

type PaymentProofController struct {
	DB *gorm.DB
}

func NewPaymentProofController(db *gorm.DB) *PaymentProofController {
	return &PaymentProofController{DB: db}
}

/* ===================== UPLOAD ===================== */
// POST /api/u/payment-proofs
func (ctrl *PaymentProofController) UploadPaymentProof(c *fiber.Ctx) error {
	// Scope anggota dari token, bukan dari body.
	memberID, err := helperAuth.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UploadPaymentProofRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Proof pending/approved untuk bulan yang sama memblokir upload baru;
	// rejected tidak (boleh kirim ulang setelah ditolak).
	var existing int64
	if err := ctrl.DB.Model(&model.PaymentProofModel{}).
		Where("payment_proof_member_id = ? AND payment_proof_month = ? AND payment_proof_year = ?",
			memberID, req.PaymentProofMonth, req.PaymentProofYear).
		Where("payment_proof_status <> ?", model.PaymentProofRejected).
		Count(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if existing > 0 {
		return helper.Error(c, fiber.StatusConflict, "Sudah ada bukti pembayaran untuk bulan ini")
	}

	m := req.ToModel(memberID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan bukti pembayaran")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Bukti pembayaran terkirim, menunggu verifikasi", m)
}

/* ===================== VERIFY ===================== */
// POST /api/a/payment-proofs/:id/verify
func (ctrl *PaymentProofController) VerifyPaymentProof(c *fiber.Ctx) error {
	proofID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "proof_id tidak valid")
	}

	adminID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.VerifyPaymentProofRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	proof, err := service.Verify(ctrl.DB, proofID, model.PaymentProofStatus(req.Decision), adminID, time.Now())
	switch {
	case err == nil:
		return helper.Success(c, "Verifikasi tersimpan", proof)
	case errors.Is(err, service.ErrAlreadyDecided):
		return helper.Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidDecision):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Bukti pembayaran tidak ditemukan")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

/* ===================== LIST PER MEMBER ===================== */
// GET /api/a/members/:id/payment-proofs
func (ctrl *PaymentProofController) GetProofsByMember(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "member_id tidak valid")
	}

	var proofs []model.PaymentProofModel
	if err := ctrl.DB.
		Where("payment_proof_member_id = ?", memberID).
		Order("payment_proof_uploaded_at desc").
		Find(&proofs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat pembayaran")
	}

	return helper.Success(c, "Riwayat bukti pembayaran", proofs)
}
