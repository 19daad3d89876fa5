package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"silatku_backend/internals/features/membership/admins/model"
	helper "silatku_backend/internals/helpers"
)

type BranchAdminController struct {
	DB *gorm.DB
}

func NewBranchAdminController(db *gorm.DB) *BranchAdminController {
	return &BranchAdminController{DB: db}
}

type CreateBranchAdminRequest struct {
	BranchAdminBranchID uuid.UUID `json:"branch_admin_branch_id" validate:"required"`
	BranchAdminFullName string    `json:"branch_admin_full_name" validate:"required,max=120"`
	BranchAdminEmail    string    `json:"branch_admin_email"     validate:"required,email"`
	BranchAdminPassword string    `json:"branch_admin_password"  validate:"required,min=8"`
}

// GET /api/a/branches/:id/admins
func (ctrl *BranchAdminController) GetAdminsByBranch(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "branch_id tidak valid")
	}

	var admins []model.BranchAdminModel
	if err := ctrl.DB.
		Where("branch_admin_branch_id = ? AND branch_admin_is_active = ?", branchID, true).
		Order("branch_admin_full_name asc").
		Find(&admins).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data admin cabang")
	}
	return helper.Success(c, "Admin cabang", admins)
}

// POST /api/o/branch-admins
func (ctrl *BranchAdminController) CreateBranchAdmin(c *fiber.Ctx) error {
	var req CreateBranchAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	admin := &model.BranchAdminModel{
		BranchAdminBranchID: req.BranchAdminBranchID,
		BranchAdminFullName: req.BranchAdminFullName,
		BranchAdminEmail:    req.BranchAdminEmail,
	}
	if err := admin.SetPassword(req.BranchAdminPassword); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := ctrl.DB.Create(admin).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat admin cabang")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Admin cabang dibuat", admin)
}
