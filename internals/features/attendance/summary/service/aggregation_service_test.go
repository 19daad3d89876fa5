package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recordModel "silatku_backend/internals/features/attendance/records/model"
	scheduleService "silatku_backend/internals/features/attendance/schedules/service"
	adminModel "silatku_backend/internals/features/membership/admins/model"
	memberModel "silatku_backend/internals/features/membership/members/model"
)

func testInstance() scheduleService.SessionInstance {
	return scheduleService.SessionInstance{
		ScheduleSlotID: uuid.New(),
		BranchID:       uuid.New(),
		Date:           time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		AgeGroup:       "remaja",
		StartTime:      "16:00",
		EndTime:        "18:00",
	}
}

func makeMembers(n int) []memberModel.MemberModel {
	out := make([]memberModel.MemberModel, n)
	for i := range out {
		out[i] = memberModel.MemberModel{
			MemberID:       uuid.New(),
			MemberFullName: "Anggota",
			MemberStatus:   memberModel.MemberStatusActive,
		}
	}
	return out
}

func record(instance scheduleService.SessionInstance, memberID uuid.UUID, status recordModel.AttendanceStatus, recordedAt time.Time) recordModel.AttendanceRecordModel {
	return recordModel.AttendanceRecordModel{
		AttendanceRecordID:         uuid.New(),
		AttendanceRecordMemberID:   memberID,
		AttendanceRecordSlotID:     instance.ScheduleSlotID,
		AttendanceRecordDate:       instance.Date,
		AttendanceRecordStatus:     status,
		AttendanceRecordRecordedAt: recordedAt,
	}
}

func adminRecord(instance scheduleService.SessionInstance, adminID uuid.UUID, status recordModel.AdminAttendanceStatus) recordModel.AdminAttendanceRecordModel {
	return recordModel.AdminAttendanceRecordModel{
		AdminAttendanceRecordID:      uuid.New(),
		AdminAttendanceRecordAdminID: adminID,
		AdminAttendanceRecordSlotID:  instance.ScheduleSlotID,
		AdminAttendanceRecordDate:    instance.Date,
		AdminAttendanceRecordStatus:  status,
	}
}

func TestSummarize_FiveBuckets(t *testing.T) {
	instance := testInstance()
	members := makeMembers(6)
	at := time.Date(2025, time.March, 3, 16, 5, 0, 0, time.UTC)

	records := []recordModel.AttendanceRecordModel{
		record(instance, members[0].MemberID, recordModel.AttendanceHadir, at),
		record(instance, members[1].MemberID, recordModel.AttendanceHadir, at.Add(3*time.Minute)),
		record(instance, members[2].MemberID, recordModel.AttendanceSakit, at.Add(5*time.Minute)),
		record(instance, members[3].MemberID, recordModel.AttendanceIzin, at.Add(7*time.Minute)),
		record(instance, members[4].MemberID, recordModel.AttendanceAlpa, at.Add(9*time.Minute)),
		// members[5] sengaja tanpa record → unrecorded, bukan alpa
	}

	sum := Summarize(instance, members, records, nil, nil)

	assert.Equal(t, MemberCounts{Hadir: 2, Sakit: 1, Izin: 1, Alpa: 1, Unrecorded: 1}, sum.MemberCounts)
	assert.Equal(t, len(members), sum.MemberCounts.Total())
	assert.Equal(t, instance.Key(), sum.SessionKey)
}

// Properti utama: lima bucket saling lepas dan jumlahnya selalu = populasi —
// tidak ada anggota yang dobel atau hilang, apa pun kombinasi statusnya.
func TestSummarize_BucketCompleteness(t *testing.T) {
	instance := testInstance()
	rng := rand.New(rand.NewSource(42))
	statuses := []recordModel.AttendanceStatus{
		recordModel.AttendanceHadir,
		recordModel.AttendanceSakit,
		recordModel.AttendanceIzin,
		recordModel.AttendanceAlpa,
	}

	for trial := 0; trial < 20; trial++ {
		n := 10 + rng.Intn(60)
		members := makeMembers(n)

		var records []recordModel.AttendanceRecordModel
		for i := range members {
			if rng.Intn(3) == 0 {
				continue // biarkan unrecorded
			}
			records = append(records, record(instance, members[i].MemberID, statuses[rng.Intn(len(statuses))], instance.Date))
		}

		sum := Summarize(instance, members, records, nil, nil)
		require.Equal(t, n, sum.MemberCounts.Total(), "trial %d", trial)
	}
}

func TestSummarize_IgnoresOtherSessions(t *testing.T) {
	instance := testInstance()
	members := makeMembers(2)

	other := instance
	other.Date = instance.Date.AddDate(0, 0, 7) // minggu berikutnya
	otherSlot := instance
	otherSlot.ScheduleSlotID = uuid.New()

	records := []recordModel.AttendanceRecordModel{
		record(other, members[0].MemberID, recordModel.AttendanceHadir, other.Date),
		record(otherSlot, members[1].MemberID, recordModel.AttendanceHadir, instance.Date),
	}

	sum := Summarize(instance, members, records, nil, nil)
	assert.Equal(t, MemberCounts{Unrecorded: 2}, sum.MemberCounts)
}

func TestSummarize_AdminBinarySplit(t *testing.T) {
	instance := testInstance()
	admins := []adminModel.BranchAdminModel{
		{BranchAdminID: uuid.New(), BranchAdminFullName: "Admin A"},
		{BranchAdminID: uuid.New(), BranchAdminFullName: "Admin B"},
		{BranchAdminID: uuid.New(), BranchAdminFullName: "Admin C"},
	}
	adminRecords := []recordModel.AdminAttendanceRecordModel{
		adminRecord(instance, admins[0].BranchAdminID, recordModel.AdminAttendanceHadir),
		adminRecord(instance, admins[1].BranchAdminID, recordModel.AdminAttendanceIzin),
	}

	sum := Summarize(instance, nil, nil, adminRecords, admins)

	// Split biner: punya record (status apa pun) vs tidak — izin tetap masuk
	// admin_attendance, bukan digabung ke bucket alpa anggota.
	require.Len(t, sum.AdminAttendance, 2)
	require.Len(t, sum.AbsentAdmins, 1)
	assert.Equal(t, admins[2].BranchAdminID, sum.AbsentAdmins[0].AdminID)
}

func TestSummarize_AttendanceTimeInfo(t *testing.T) {
	instance := testInstance()
	members := makeMembers(3)
	first := time.Date(2025, time.March, 3, 15, 55, 0, 0, time.UTC)
	last := time.Date(2025, time.March, 3, 16, 20, 0, 0, time.UTC)

	records := []recordModel.AttendanceRecordModel{
		record(instance, members[0].MemberID, recordModel.AttendanceHadir, last),
		record(instance, members[1].MemberID, recordModel.AttendanceHadir, first),
		record(instance, members[2].MemberID, recordModel.AttendanceSakit, first.Add(10*time.Minute)),
	}

	sum := Summarize(instance, members, records, nil, nil)
	require.NotNil(t, sum.AttendanceTimeInfo.First)
	require.NotNil(t, sum.AttendanceTimeInfo.Last)
	assert.Equal(t, first, *sum.AttendanceTimeInfo.First)
	assert.Equal(t, last, *sum.AttendanceTimeInfo.Last)
}

func TestSummarize_NoCheckinsMeansNullTimeInfo(t *testing.T) {
	instance := testInstance()
	sum := Summarize(instance, makeMembers(4), nil, nil, nil)

	// Sesi tanpa absensi sama sekali: dua-duanya null, biar anomalinya terlihat.
	assert.Nil(t, sum.AttendanceTimeInfo.First)
	assert.Nil(t, sum.AttendanceTimeInfo.Last)
	assert.Equal(t, 4, sum.MemberCounts.Unrecorded)
}

// Angka rekap dan drill-down harus tidak pernah berbeda untuk snapshot data
// yang sama.
func TestResolveMembers_ConsistentWithSummarize(t *testing.T) {
	instance := testInstance()
	rng := rand.New(rand.NewSource(7))
	members := makeMembers(35)
	statuses := []recordModel.AttendanceStatus{
		recordModel.AttendanceHadir,
		recordModel.AttendanceSakit,
		recordModel.AttendanceIzin,
		recordModel.AttendanceAlpa,
	}

	var records []recordModel.AttendanceRecordModel
	for i := range members {
		if rng.Intn(4) == 0 {
			continue
		}
		records = append(records, record(instance, members[i].MemberID, statuses[rng.Intn(len(statuses))], instance.Date))
	}

	sum := Summarize(instance, members, records, nil, nil)
	wantByStatus := map[string]int{
		string(recordModel.AttendanceHadir): sum.MemberCounts.Hadir,
		string(recordModel.AttendanceSakit): sum.MemberCounts.Sakit,
		string(recordModel.AttendanceIzin):  sum.MemberCounts.Izin,
		string(recordModel.AttendanceAlpa):  sum.MemberCounts.Alpa,
		StatusUnrecorded:                    sum.MemberCounts.Unrecorded,
	}

	for status, want := range wantByStatus {
		list, err := ResolveMembers(instance, status, members, records)
		require.NoError(t, err, "status=%s", status)
		assert.Len(t, list, want, "status=%s", status)
		for _, ms := range list {
			assert.Equal(t, status, ms.Status)
			if status == StatusUnrecorded {
				assert.Nil(t, ms.RecordedAt)
			} else {
				assert.NotNil(t, ms.RecordedAt)
			}
		}
	}
}

func TestResolveMembers_UnknownStatus(t *testing.T) {
	_, err := ResolveMembers(testInstance(), "terlambat", nil, nil)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestResolveAdmins_Buckets(t *testing.T) {
	instance := testInstance()
	admins := []adminModel.BranchAdminModel{
		{BranchAdminID: uuid.New(), BranchAdminFullName: "Admin A"},
		{BranchAdminID: uuid.New(), BranchAdminFullName: "Admin B"},
	}
	records := []recordModel.AdminAttendanceRecordModel{
		adminRecord(instance, admins[0].BranchAdminID, recordModel.AdminAttendanceHadir),
	}

	present, err := ResolveAdmins(instance, BucketAdminAttendance, admins, records)
	require.NoError(t, err)
	assert.Len(t, present.([]AdminAttendee), 1)

	absent, err := ResolveAdmins(instance, BucketAbsentAdmins, admins, records)
	require.NoError(t, err)
	assert.Len(t, absent.([]AbsentAdmin), 1)

	_, err = ResolveAdmins(instance, "semua", admins, records)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
