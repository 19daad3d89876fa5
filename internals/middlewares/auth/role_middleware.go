package auth

import (
	"github.com/gofiber/fiber/v2"

	"silatku_backend/internals/constants"
	helperAuth "silatku_backend/internals/helpers/auth"
)

// RequireRoles menolak request bila role di token tidak termasuk allowed.
func RequireRoles(feature string, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(helperAuth.LocRole).(string)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
	}
}

// IsOwnerGlobal khusus grup /api/o
func IsOwnerGlobal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(helperAuth.LocRole).(string)
		if role != constants.RoleOwner {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorOwner("dashboard"))
		}
		return c.Next()
	}
}
