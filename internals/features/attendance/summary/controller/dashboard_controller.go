package controller

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"silatku_backend/internals/features/attendance/summary/service"
	branchModel "silatku_backend/internals/features/membership/branches/model"
	helper "silatku_backend/internals/helpers"
)

type BranchDashboard struct {
	BranchID   string                   `json:"branch_id"`
	BranchName string                   `json:"branch_name"`
	Sessions   []service.SessionSummary `json:"sessions"`
}

// GET /api/o/dashboard/attendance?month=&year=
// Rekap seluruh cabang; tiap cabang dihitung paralel — rekapnya pure, tidak
// ada shared state yang perlu dikunci selain slice hasil.
func (ctrl *SummaryController) GetDashboardAttendance(c *fiber.Ctx) error {
	month, year, err := helper.ResolveMonthYear(c)
	if err != nil {
		return err
	}

	var branches []branchModel.BranchModel
	if err := ctrl.DB.
		Where("branch_is_active = ?", true).
		Order("branch_name asc").
		Find(&branches).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil cabang")
	}

	results := make([]BranchDashboard, len(branches))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(c.UserContext())
	g.SetLimit(8)
	for i := range branches {
		i := i
		branch := branches[i]
		g.Go(func() error {
			summaries, err := ctrl.buildBranchSummaries(gctx, branch.BranchID, month, year)
			if err != nil {
				return err
			}
			mu.Lock()
			results[i] = BranchDashboard{
				BranchID:   branch.BranchID.String(),
				BranchName: branch.BranchName,
				Sessions:   summaries,
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Dashboard kehadiran", results)
}
