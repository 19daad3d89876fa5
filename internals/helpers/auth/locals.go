package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci Locals hasil hidrasi middleware JWT
const (
	LocUserID   = "user_id"
	LocMemberID = "member_id"
	LocBranchID = "branch_id"
	LocRole     = "role"
)

// GetUserIDFromToken mengambil user_id dari Locals (hasil AuthJWT).
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocUserID, "User ID tidak ditemukan di token")
}

// GetBranchIDFromToken mengambil scope cabang dari Locals.
func GetBranchIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocBranchID, "Branch ID tidak ditemukan di token")
}

// GetMemberIDFromToken mengambil member_id dari Locals (token anggota).
func GetMemberIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocMemberID, "Member ID tidak ditemukan di token")
}

func uuidLocal(c *fiber.Ctx, key, msg string) (uuid.UUID, error) {
	raw, _ := c.Locals(key).(string)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, msg)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, msg)
	}
	return id, nil
}
