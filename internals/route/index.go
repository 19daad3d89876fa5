// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"silatku_backend/internals/constants"
	authMw "silatku_backend/internals/middlewares/auth"

	recordRoute "silatku_backend/internals/features/attendance/records/route"
	scheduleRoute "silatku_backend/internals/features/attendance/schedules/route"
	summaryRoute "silatku_backend/internals/features/attendance/summary/route"
	duesRoute "silatku_backend/internals/features/billing/dues/route"
	paymentRoute "silatku_backend/internals/features/billing/payments/route"
	adminRoute "silatku_backend/internals/features/membership/admins/route"
	branchRoute "silatku_backend/internals/features/membership/branches/route"
	memberRoute "silatku_backend/internals/features/membership/members/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	jwtOpts := authMw.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	}

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	branchRoute.BranchPublicRoutes(public, db)
	duesRoute.DuesPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMw.AuthJWT(jwtOpts))
	paymentRoute.PaymentUserRoutes(user, db)
	duesRoute.DuesUserRoutes(user, db)

	// ===================== ADMIN (per cabang) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMw.AuthJWT(jwtOpts),
		authMw.RequireRoles("manajemen cabang", constants.AdminAndAbove...),
	)
	memberRoute.MemberAdminRoutes(admin, db)
	adminRoute.BranchAdminAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
	scheduleRoute.ScheduleAdminRoutes(admin, db)
	recordRoute.AttendanceRecordAdminRoutes(admin, db)
	summaryRoute.SummaryAdminRoutes(admin, db)

	// ===================== OWNER (GLOBAL) =====================
	log.Println("[INFO] Setting up OWNER group...")
	owner := app.Group("/api/o",
		authMw.AuthJWT(jwtOpts),
		authMw.IsOwnerGlobal(),
	)
	adminRoute.BranchAdminOwnerRoutes(owner, db)
	summaryRoute.SummaryOwnerRoutes(owner, db)
}
