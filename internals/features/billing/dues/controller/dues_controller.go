package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"silatku_backend/internals/features/billing/dues/model"
	"silatku_backend/internals/features/billing/dues/service"
	paymentModel "silatku_backend/internals/features/billing/payments/model"
	memberModel "silatku_backend/internals/features/membership/members/model"
	helper "silatku_backend/internals/helpers"
)

type DuesController struct {
	DB *gorm.DB
}

func NewDuesController(db *gorm.DB) *DuesController {
	return &DuesController{DB: db}
}

type CheckoutDuesRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	Amount   int64     `json:"amount"    validate:"required,min=1000"`
	Month    int       `json:"month"     validate:"required,min=1,max=12"`
	Year     int       `json:"year"      validate:"required,min=2000"`
}

/* ===================== CHECKOUT ===================== */
// POST /api/u/dues/checkout — buat transaksi + Snap token
func (ctrl *DuesController) CheckoutDues(c *fiber.Ctx) error {
	var req CheckoutDuesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var member memberModel.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", req.MemberID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	tx := model.DuesTransactionModel{
		DuesTransactionOrderID:  fmt.Sprintf("DUES-%s", uuid.New()),
		DuesTransactionMemberID: member.MemberID,
		DuesTransactionMonth:    req.Month,
		DuesTransactionYear:     req.Year,
		DuesTransactionAmount:   req.Amount,
		DuesTransactionStatus:   model.DuesTxInitiated,
	}

	token, err := service.GenerateSnapToken(tx, member.MemberFullName, "")
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi Midtrans")
	}
	tx.DuesTransactionSnapToken = &token

	if err := ctrl.DB.Create(&tx).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan transaksi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Transaksi iuran dibuat", fiber.Map{
		"order_id":   tx.DuesTransactionOrderID,
		"snap_token": token,
	})
}

/* ===================== WEBHOOK ===================== */
// POST /api/public/dues/notification
// Settlement yang valid otomatis jadi PaymentProof approved + menggeser
// jatuh tempo member.
func (ctrl *DuesController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid webhook"})
	}
	log.Println("Received dues webhook:", body["order_id"], body["transaction_status"])

	orderID, _ := body["order_id"].(string)
	txStatus, _ := body["transaction_status"].(string)
	statusCode, _ := body["status_code"].(string)
	grossAmount, _ := body["gross_amount"].(string)
	signatureKey, _ := body["signature_key"].(string)

	if orderID == "" || !service.VerifySignature(orderID, statusCode, grossAmount, signatureKey) {
		return c.SendStatus(403)
	}

	var duesTx model.DuesTransactionModel
	if err := ctrl.DB.First(&duesTx, "dues_transaction_order_id = ?", orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.SendStatus(404)
		}
		return c.SendStatus(500)
	}

	// Sudah settled? Webhook diulang itu normal — no-op.
	if duesTx.DuesTransactionStatus == model.DuesTxSettled {
		return c.SendStatus(200)
	}

	switch txStatus {
	case "settlement", "capture":
		if err := ctrl.settleDues(&duesTx, body); err != nil {
			log.Println("[ERROR] Settlement gagal:", err)
			return c.SendStatus(500)
		}
	case "deny", "cancel", "expire":
		if err := ctrl.DB.Model(&duesTx).Updates(map[string]interface{}{
			"dues_transaction_status":  model.DuesTxFailed,
			"dues_transaction_payload": datatypes.JSONMap(body),
		}).Error; err != nil {
			return c.SendStatus(500)
		}
	}

	return c.SendStatus(200)
}

func (ctrl *DuesController) settleDues(duesTx *model.DuesTransactionModel, payload map[string]interface{}) error {
	now := time.Now()
	paymentDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(duesTx).Updates(map[string]interface{}{
			"dues_transaction_status":  model.DuesTxSettled,
			"dues_transaction_payload": datatypes.JSONMap(payload),
		}).Error; err != nil {
			return err
		}

		// Jangan dobel kalau bulan itu sudah punya proof approved.
		var approved int64
		if err := tx.Model(&paymentModel.PaymentProofModel{}).
			Where("payment_proof_member_id = ? AND payment_proof_month = ? AND payment_proof_year = ? AND payment_proof_status = ?",
				duesTx.DuesTransactionMemberID, duesTx.DuesTransactionMonth, duesTx.DuesTransactionYear, paymentModel.PaymentProofApproved).
			Count(&approved).Error; err != nil {
			return err
		}
		if approved == 0 {
			proof := paymentModel.PaymentProofModel{
				PaymentProofMemberID:    duesTx.DuesTransactionMemberID,
				PaymentProofMonth:       duesTx.DuesTransactionMonth,
				PaymentProofYear:        duesTx.DuesTransactionYear,
				PaymentProofStatus:      paymentModel.PaymentProofApproved,
				PaymentProofPaymentDate: &paymentDate,
				PaymentProofDecidedAt:   &now,
			}
			if err := tx.Create(&proof).Error; err != nil {
				return err
			}
		}

		return tx.Model(&memberModel.MemberModel{}).
			Where("member_id = ?", duesTx.DuesTransactionMemberID).
			Update("member_last_payment_date", paymentDate).Error
	})
}
