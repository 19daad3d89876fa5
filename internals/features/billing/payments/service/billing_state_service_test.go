package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentModel "silatku_backend/internals/features/billing/payments/model"
	memberModel "silatku_backend/internals/features/membership/members/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func member(reg, lastPay *time.Time) memberModel.MemberModel {
	return memberModel.MemberModel{
		MemberFullName:         "Test Anggota",
		MemberStatus:           memberModel.MemberStatusActive,
		MemberRegistrationDate: reg,
		MemberLastPaymentDate:  lastPay,
	}
}

func proofFor(now time.Time, status paymentModel.PaymentProofStatus, uploadedAt time.Time) paymentModel.PaymentProofModel {
	return paymentModel.PaymentProofModel{
		PaymentProofMonth:      int(now.Month()),
		PaymentProofYear:       now.Year(),
		PaymentProofStatus:     status,
		PaymentProofUploadedAt: uploadedAt,
	}
}

func TestComputeBillingState_MissingRegistrationDate(t *testing.T) {
	// Data referensi belum lengkap: jangan crash, anggap paid.
	state := ComputeBillingState(member(nil, nil), nil, date(2024, time.March, 1))
	assert.Equal(t, BillingPaid, state.Status)
	assert.Nil(t, state.Days)
}

func TestComputeBillingState_RollingDueDateLeapClamp(t *testing.T) {
	// Daftar 31 Jan 2024, belum pernah bayar, sekarang 1 Mar 2024:
	// jatuh tempo 29 Feb (clamp tahun kabisat) sudah lewat 1 hari.
	state := ComputeBillingState(member(datePtr(2024, time.January, 31), nil), nil, date(2024, time.March, 1))
	require.Equal(t, BillingOverdue, state.Status)
	require.NotNil(t, state.Days)
	assert.Equal(t, 1, *state.Days)
	require.NotNil(t, state.NextDueDate)
	assert.Equal(t, date(2024, time.February, 29), *state.NextDueDate)
}

func TestComputeBillingState_DueWindow(t *testing.T) {
	reg := datePtr(2024, time.March, 10) // jatuh tempo 10 Apr

	cases := []struct {
		name       string
		now        time.Time
		wantStatus BillingStatus
		wantDays   int
	}{
		{"lebih dari 7 hari → belum perlu sinyal", date(2024, time.April, 1), BillingPaid, 0},
		{"tepat 7 hari", date(2024, time.April, 3), BillingDue, 7},
		{"5 hari lagi", date(2024, time.April, 5), BillingDue, 5},
		{"hari-H", date(2024, time.April, 10), BillingDue, 0},
		{"lewat 3 hari", date(2024, time.April, 13), BillingOverdue, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := ComputeBillingState(member(reg, nil), nil, tc.now)
			require.Equal(t, tc.wantStatus, state.Status)
			if tc.wantStatus != BillingPaid {
				require.NotNil(t, state.Days)
				assert.Equal(t, tc.wantDays, *state.Days)
			}
		})
	}
}

func TestComputeBillingState_LastPaymentShiftsBase(t *testing.T) {
	// Pembayaran terakhir menggantikan tanggal daftar sebagai basis rolling.
	m := member(datePtr(2024, time.January, 5), datePtr(2024, time.March, 5))
	state := ComputeBillingState(m, nil, date(2024, time.April, 2))
	require.Equal(t, BillingDue, state.Status)
	require.NotNil(t, state.Days)
	assert.Equal(t, 3, *state.Days) // jatuh tempo 5 Apr
}

func TestComputeBillingState_PendingSuppressesOverdue(t *testing.T) {
	// Proof pending untuk bulan berjalan selalu menang, seberapa pun telatnya.
	now := date(2024, time.June, 20)
	m := member(datePtr(2023, time.January, 1), nil) // overdue berbulan-bulan
	p := proofFor(now, paymentModel.PaymentProofPending, now)
	p.PaymentProofID = uuid.New()

	state := ComputeBillingState(m, []paymentModel.PaymentProofModel{p}, now)
	require.Equal(t, BillingPendingVerification, state.Status)
	require.NotNil(t, state.ProofID)
	assert.Equal(t, p.PaymentProofID, *state.ProofID)
}

func TestComputeBillingState_ApprovedMeansPaid(t *testing.T) {
	now := date(2024, time.June, 20)
	m := member(datePtr(2024, time.January, 1), nil)
	p := proofFor(now, paymentModel.PaymentProofApproved, now)

	state := ComputeBillingState(m, []paymentModel.PaymentProofModel{p}, now)
	assert.Equal(t, BillingPaid, state.Status)
}

func TestComputeBillingState_RejectionReopensWindow(t *testing.T) {
	// Proof rejected diperlakukan seakan tidak pernah ada.
	now := date(2024, time.March, 1)
	m := member(datePtr(2024, time.January, 31), nil)
	p := proofFor(now, paymentModel.PaymentProofRejected, now)

	state := ComputeBillingState(m, []paymentModel.PaymentProofModel{p}, now)
	require.Equal(t, BillingOverdue, state.Status)
	require.NotNil(t, state.Days)
	assert.Equal(t, 1, *state.Days)
}

func TestComputeBillingState_ProofForOtherMonthIgnored(t *testing.T) {
	// Lookup proof pakai bulan kalender berjalan — proof bulan lalu tidak dihitung.
	now := date(2024, time.March, 1)
	m := member(datePtr(2024, time.January, 31), nil)
	p := paymentModel.PaymentProofModel{
		PaymentProofMonth:  2,
		PaymentProofYear:   2024,
		PaymentProofStatus: paymentModel.PaymentProofApproved,
	}

	state := ComputeBillingState(m, []paymentModel.PaymentProofModel{p}, now)
	assert.Equal(t, BillingOverdue, state.Status)
}

func TestComputeBillingState_MostRecentNonRejectedWins(t *testing.T) {
	// Upload ulang setelah rejected: yang pending terbaru yang dipakai.
	now := date(2024, time.March, 15)
	m := member(datePtr(2024, time.February, 20), nil)

	rejected := proofFor(now, paymentModel.PaymentProofRejected, date(2024, time.March, 10))
	pending := proofFor(now, paymentModel.PaymentProofPending, date(2024, time.March, 12))

	state := ComputeBillingState(m, []paymentModel.PaymentProofModel{rejected, pending}, now)
	assert.Equal(t, BillingPendingVerification, state.Status)
}

func TestNextDueDate_Clamping(t *testing.T) {
	cases := []struct {
		base time.Time
		want time.Time
	}{
		{date(2024, time.January, 31), date(2024, time.February, 29)}, // kabisat
		{date(2023, time.January, 31), date(2023, time.February, 28)},
		{date(2024, time.March, 31), date(2024, time.April, 30)},
		{date(2024, time.December, 15), date(2025, time.January, 15)}, // lintas tahun
		{date(2024, time.April, 10), date(2024, time.May, 10)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NextDueDate(tc.base), "base=%s", tc.base)
	}
}
