package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"silatku_backend/internals/features/membership/branches/model"
	helper "silatku_backend/internals/helpers"
)

type BranchController struct {
	DB *gorm.DB
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db}
}

// GET /api/public/branches
func (ctrl *BranchController) GetAllBranches(c *fiber.Ctx) error {
	var branches []model.BranchModel
	if err := ctrl.DB.
		Where("branch_is_active = ?", true).
		Order("branch_name asc").
		Find(&branches).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data cabang")
	}
	return helper.Success(c, "Daftar cabang", branches)
}

// GET /api/public/branches/:id
func (ctrl *BranchController) GetBranchByID(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "branch_id tidak valid")
	}

	var branch model.BranchModel
	if err := ctrl.DB.First(&branch, "branch_id = ?", branchID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Cabang tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Detail cabang", branch)
}
