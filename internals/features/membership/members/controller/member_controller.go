package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentModel "silatku_backend/internals/features/billing/payments/model"
	billingService "silatku_backend/internals/features/billing/payments/service"
	"silatku_backend/internals/features/membership/members/dto"
	"silatku_backend/internals/features/membership/members/model"
	helper "silatku_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/a/members?branch_id=&status=
func (ctrl *MemberController) GetMembers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MemberModel{})
	if branchStr := c.Query("branch_id"); branchStr != "" {
		branchID, err := uuid.Parse(branchStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "branch_id tidak valid")
		}
		q = q.Where("member_branch_id = ?", branchID)
	}
	if status := c.Query("status"); status != "" {
		if !model.MemberStatus(status).Valid() {
			return helper.Error(c, fiber.StatusBadRequest, "status tidak dikenal")
		}
		q = q.Where("member_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var members []model.MemberModel
	if err := q.Order("member_full_name asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&members).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	return helper.Success(c, "Daftar anggota", fiber.Map{
		"members":    members,
		"pagination": helper.BuildPagination(paging, total, len(members)),
	})
}

/* ===================== DETAIL ===================== */
// GET /api/a/members/:id — termasuk status iuran hasil komputasi
func (ctrl *MemberController) GetMemberByID(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "member_id tidak valid")
	}

	var member model.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", memberID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	var proofs []paymentModel.PaymentProofModel
	if err := ctrl.DB.
		Where("payment_proof_member_id = ? AND payment_proof_month = ? AND payment_proof_year = ?",
			memberID, int(now.Month()), now.Year()).
		Find(&proofs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Detail anggota", dto.MemberWithBillingResponse{
		Member:       member,
		BillingState: billingService.ComputeBillingState(member, proofs, now),
	})
}

/* ===================== CREATE ===================== */
// POST /api/a/members
func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat anggota")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Anggota terdaftar", m)
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/members/:id
func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "member_id tidak valid")
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.MemberFullName != nil {
		updates["member_full_name"] = *req.MemberFullName
	}
	if req.MemberAgeGroup != nil {
		updates["member_age_group"] = *req.MemberAgeGroup
	}
	if req.MemberStatus != nil {
		updates["member_status"] = *req.MemberStatus
	}
	if req.MemberRegistrationDate != nil {
		d, err := time.Parse("2006-01-02", *req.MemberRegistrationDate)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "member_registration_date tidak valid")
		}
		updates["member_registration_date"] = d
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&model.MemberModel{}).
		Where("member_id = ?", memberID).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}

	var member model.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", memberID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Anggota diperbarui", member)
}
