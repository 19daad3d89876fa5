// file: internals/features/attendance/schedules/service/session_instantiator.go
//
// Session instance tidak pernah disimpan — identitasnya (slot_id, tanggal) dan
// selalu di-derive ulang dari katalog jadwal. Murni & deterministik, aman
// dihitung ulang di setiap request.
package service

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"silatku_backend/internals/features/attendance/schedules/model"
	helper "silatku_backend/internals/helpers"
)

const sessionDateLayout = "2006-01-02"

// SessionInstance — satu kejadian berjadwal pada tanggal konkret.
type SessionInstance struct {
	ScheduleSlotID uuid.UUID `json:"schedule_slot_id"`
	BranchID       uuid.UUID `json:"branch_id"`
	Date           time.Time `json:"date"`
	AgeGroup       string    `json:"age_group"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Location       *string   `json:"location,omitempty"`
}

// Key mengemas identitas instance jadi "<slot_uuid>_<YYYY-MM-DD>".
func (s SessionInstance) Key() string {
	return fmt.Sprintf("%s_%s", s.ScheduleSlotID, s.Date.Format(sessionDateLayout))
}

// ParseSessionKey membongkar key kembali ke (slot_id, tanggal).
func ParseSessionKey(key string) (uuid.UUID, time.Time, error) {
	idx := strings.LastIndex(key, "_")
	if idx < 0 {
		return uuid.Nil, time.Time{}, fmt.Errorf("session_key tidak valid: %q", key)
	}
	slotID, err := uuid.Parse(key[:idx])
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("session_key tidak valid: %q", key)
	}
	date, err := time.Parse(sessionDateLayout, key[idx+1:])
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("session_key tidak valid: %q", key)
	}
	return slotID, date, nil
}

// SlotHasSessionOn melapor apakah slot benar-benar menghasilkan instance pada
// tanggal ini. Key yang lolos parse bisa saja menunjuk sesi yang tidak pernah
// ada (weekday tidak cocok, tahun di luar rentang) — itu sesi tidak ditemukan,
// bukan sesi kosong.
func SlotHasSessionOn(slot model.ScheduleSlotModel, date time.Time) bool {
	if slot.ScheduleSlotWeekday < 0 || slot.ScheduleSlotWeekday > 6 {
		return false
	}
	if int(date.Weekday()) != slot.ScheduleSlotWeekday {
		return false
	}
	if date.Year() < helper.MinWindowYear || date.Year() > time.Now().Year()+1 {
		return false
	}
	return true
}

// InstantiateSessions meng-expand slot mingguan jadi instance bertanggal untuk
// satu bulan kalender. Urutan: tanggal naik, lalu jam mulai.
// Slot tanpa jam mulai/selesai dilewati (data referensi belum lengkap) dan
// dicatat di log, bukan menggagalkan seluruh agregasi.
func InstantiateSessions(slots []model.ScheduleSlotModel, month, year int) []SessionInstance {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := first.AddDate(0, 1, 0)

	out := make([]SessionInstance, 0, len(slots)*5)
	for i := range slots {
		slot := &slots[i]
		if slot.ScheduleSlotStartTime == "" || slot.ScheduleSlotEndTime == "" {
			log.Printf("⚠️ slot %s dilewati: jam mulai/selesai kosong", slot.ScheduleSlotID)
			continue
		}
		if slot.ScheduleSlotWeekday < 0 || slot.ScheduleSlotWeekday > 6 {
			log.Printf("⚠️ slot %s dilewati: weekday %d di luar 0..6", slot.ScheduleSlotID, slot.ScheduleSlotWeekday)
			continue
		}

		for d := first; d.Before(nextMonth); d = d.AddDate(0, 0, 1) {
			if int(d.Weekday()) != slot.ScheduleSlotWeekday {
				continue
			}
			out = append(out, SessionInstance{
				ScheduleSlotID: slot.ScheduleSlotID,
				BranchID:       slot.ScheduleSlotBranchID,
				Date:           d,
				AgeGroup:       slot.ScheduleSlotAgeGroup,
				StartTime:      slot.ScheduleSlotStartTime,
				EndTime:        slot.ScheduleSlotEndTime,
				Location:       slot.ScheduleSlotLocation,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}
