package helper

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Batas bawah tahun yang dianggap masuk akal untuk query bulanan.
const MinWindowYear = 2000

// ResolveMonthYear membaca ?month= & ?year= dan menolak window yang tidak wajar
// sebelum sampai ke kalkulator (bulan di luar 1..12, tahun sebelum epoch sistem
// atau lebih dari setahun ke depan).
func ResolveMonthYear(c *fiber.Ctx) (month, year int, err error) {
	monthStr := strings.TrimSpace(c.Query("month"))
	yearStr := strings.TrimSpace(c.Query("year"))
	if monthStr == "" || yearStr == "" {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Parameter month dan year wajib diisi")
	}

	month, errM := strconv.Atoi(monthStr)
	year, errY := strconv.Atoi(yearStr)
	if errM != nil || errY != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Parameter month/year tidak valid")
	}

	if month < 1 || month > 12 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Bulan harus 1..12")
	}
	if year < MinWindowYear || year > time.Now().Year()+1 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Tahun di luar rentang yang didukung")
	}

	return month, year, nil
}
