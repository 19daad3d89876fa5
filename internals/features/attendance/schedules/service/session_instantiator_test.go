package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silatku_backend/internals/features/attendance/schedules/model"
)

func slot(branch uuid.UUID, weekday int, start, end string) model.ScheduleSlotModel {
	return model.ScheduleSlotModel{
		ScheduleSlotID:        uuid.New(),
		ScheduleSlotBranchID:  branch,
		ScheduleSlotAgeGroup:  "remaja",
		ScheduleSlotWeekday:   weekday,
		ScheduleSlotStartTime: start,
		ScheduleSlotEndTime:   end,
	}
}

func TestInstantiateSessions_ExactlyFourMondays(t *testing.T) {
	// Februari 2025 punya tepat 4 hari Senin: 3, 10, 17, 24.
	branch := uuid.New()
	s := slot(branch, int(time.Monday), "16:00", "18:00")

	sessions := InstantiateSessions([]model.ScheduleSlotModel{s}, 2, 2025)

	require.Len(t, sessions, 4)
	wantDays := []int{3, 10, 17, 24}
	for i, session := range sessions {
		assert.Equal(t, wantDays[i], session.Date.Day())
		assert.Equal(t, time.Monday, session.Date.Weekday())
		assert.Equal(t, s.ScheduleSlotID, session.ScheduleSlotID)
	}
}

func TestInstantiateSessions_OrderedByDateThenStartTime(t *testing.T) {
	branch := uuid.New()
	late := slot(branch, int(time.Saturday), "19:00", "21:00")
	early := slot(branch, int(time.Saturday), "08:00", "10:00")
	midweek := slot(branch, int(time.Wednesday), "17:00", "19:00")

	sessions := InstantiateSessions([]model.ScheduleSlotModel{late, early, midweek}, 3, 2025)
	require.NotEmpty(t, sessions)

	for i := 1; i < len(sessions); i++ {
		prev, cur := sessions[i-1], sessions[i]
		if prev.Date.Equal(cur.Date) {
			assert.LessOrEqual(t, prev.StartTime, cur.StartTime)
		} else {
			assert.True(t, prev.Date.Before(cur.Date))
		}
	}
}

func TestInstantiateSessions_SkipsIncompleteSlots(t *testing.T) {
	// Slot tanpa jam = data referensi belum lengkap: dilewati, bukan error.
	branch := uuid.New()
	broken := slot(branch, int(time.Monday), "", "")
	ok := slot(branch, int(time.Monday), "16:00", "18:00")
	badWeekday := slot(branch, 9, "16:00", "18:00")

	sessions := InstantiateSessions([]model.ScheduleSlotModel{broken, ok, badWeekday}, 2, 2025)

	require.Len(t, sessions, 4)
	for _, s := range sessions {
		assert.Equal(t, ok.ScheduleSlotID, s.ScheduleSlotID)
	}
}

func TestInstantiateSessions_EmptyCatalog(t *testing.T) {
	assert.Empty(t, InstantiateSessions(nil, 6, 2025))
}

func TestSessionKeyRoundtrip(t *testing.T) {
	branch := uuid.New()
	s := slot(branch, int(time.Friday), "16:00", "18:00")
	sessions := InstantiateSessions([]model.ScheduleSlotModel{s}, 5, 2025)
	require.NotEmpty(t, sessions)

	key := sessions[0].Key()
	slotID, date, err := ParseSessionKey(key)
	require.NoError(t, err)
	assert.Equal(t, s.ScheduleSlotID, slotID)
	assert.True(t, date.Equal(sessions[0].Date))
}

func TestSlotHasSessionOn(t *testing.T) {
	branch := uuid.New()
	monday := slot(branch, int(time.Monday), "16:00", "18:00")

	// Senin pertama dua tahun ke depan — lolos cek weekday, gagal di cek tahun.
	farFuture := time.Date(time.Now().Year()+2, 1, 1, 0, 0, 0, 0, time.UTC)
	for farFuture.Weekday() != time.Monday {
		farFuture = farFuture.AddDate(0, 0, 1)
	}

	cases := []struct {
		name string
		s    model.ScheduleSlotModel
		date time.Time
		want bool
	}{
		{"senin pada hari senin", monday, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), true},
		{"senin pada hari selasa", monday, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), false},
		{"tahun sebelum batas bawah", monday, time.Date(1999, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"tahun terlalu jauh ke depan", monday, farFuture, false},
		{"weekday slot di luar rentang", slot(branch, 9, "16:00", "18:00"), time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SlotHasSessionOn(tc.s, tc.date))
		})
	}
}

func TestParseSessionKey_Invalid(t *testing.T) {
	cases := []string{
		"",
		"tanpa-pemisah",
		"bukan-uuid_2025-05-02",
		uuid.New().String() + "_02-05-2025", // format tanggal salah
		uuid.New().String() + "_",
	}
	for _, key := range cases {
		_, _, err := ParseSessionKey(key)
		assert.Error(t, err, "key=%q", key)
	}
}
