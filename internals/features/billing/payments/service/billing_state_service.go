// file: internals/features/billing/payments/service/billing_state_service.go
//
// Kalkulator status iuran. Pure function — dihitung ulang di setiap query,
// tidak pernah di-cache melewati mutasi member/proof.
package service

import (
	"time"

	"github.com/google/uuid"

	paymentModel "silatku_backend/internals/features/billing/payments/model"
	memberModel "silatku_backend/internals/features/membership/members/model"
)

type BillingStatus string

const (
	BillingPaid                BillingStatus = "paid"
	BillingPendingVerification BillingStatus = "pending_verification"
	BillingDue                 BillingStatus = "due"
	BillingOverdue             BillingStatus = "overdue"
)

// Jendela "due" baru ditampilkan kalau jatuh tempo <= 7 hari lagi.
const DueSoonWindowDays = 7

type BillingState struct {
	Status BillingStatus `json:"status"`

	// Terisi untuk due (sisa hari) dan overdue (hari keterlambatan).
	Days *int `json:"days,omitempty"`

	// Terisi untuk pending_verification.
	ProofID *uuid.UUID `json:"proof_id,omitempty"`

	NextDueDate *time.Time `json:"next_due_date,omitempty"`
}

// ComputeBillingState menghitung status iuran "sekarang" dari data registry +
// proof BULAN KALENDER BERJALAN. Catatan perilaku yang dipertahankan dari
// sistem lama: lookup proof memakai bulan kalender, sedangkan jatuh tempo
// rolling dari pembayaran terakhir — keduanya sengaja tidak disamakan.
func ComputeBillingState(m memberModel.MemberModel, proofsCurrentMonth []paymentModel.PaymentProofModel, now time.Time) BillingState {
	// 1) Data referensi belum lengkap → anggap paid, jangan pernah panic.
	if m.MemberRegistrationDate == nil {
		return BillingState{Status: BillingPaid}
	}

	// 2) Proof non-rejected terbaru untuk bulan berjalan menang atas hitungan
	//    jatuh tempo.
	if p := latestNonRejected(proofsCurrentMonth, now); p != nil {
		if p.PaymentProofStatus == paymentModel.PaymentProofPending {
			id := p.PaymentProofID
			return BillingState{Status: BillingPendingVerification, ProofID: &id}
		}
		return BillingState{Status: BillingPaid}
	}

	// 3) Jatuh tempo rolling: basis = pembayaran terakhir, fallback tanggal daftar.
	base := m.MemberRegistrationDate
	if m.MemberLastPaymentDate != nil {
		base = m.MemberLastPaymentDate
	}
	nextDue := NextDueDate(*base)

	// 4) Selisih hari, now dipotong ke tengah malam.
	days := daysBetween(truncateToDate(now), nextDue)

	switch {
	case days > DueSoonWindowDays:
		// 5) Masih jauh — belum perlu sinyal apa pun di UI.
		return BillingState{Status: BillingPaid, NextDueDate: &nextDue}
	case days >= 0:
		return BillingState{Status: BillingDue, Days: &days, NextDueDate: &nextDue}
	default:
		late := -days
		return BillingState{Status: BillingOverdue, Days: &late, NextDueDate: &nextDue}
	}
}

// NextDueDate = base + 1 bulan kalender, tanggal di-clamp ke akhir bulan kalau
// tidak ada (31 Jan → 28/29 Feb).
func NextDueDate(base time.Time) time.Time {
	y, m, d := base.Date()
	last := daysInMonth(y, m+1)
	if d > last {
		d = last
	}
	return time.Date(y, m+1, d, 0, 0, 0, 0, time.UTC)
}

// latestNonRejected memilih proof pending/approved terbaru untuk bulan kalender
// now. Proof rejected diperlakukan seakan tidak pernah ada.
func latestNonRejected(proofs []paymentModel.PaymentProofModel, now time.Time) *paymentModel.PaymentProofModel {
	month := int(now.Month())
	year := now.Year()

	var best *paymentModel.PaymentProofModel
	for i := range proofs {
		p := &proofs[i]
		if p.PaymentProofMonth != month || p.PaymentProofYear != year {
			continue
		}
		if p.PaymentProofStatus == paymentModel.PaymentProofRejected {
			continue
		}
		if best == nil || p.PaymentProofUploadedAt.After(best.PaymentProofUploadedAt) {
			best = p
		}
	}
	return best
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(truncateToDate(to).Sub(truncateToDate(from)).Hours() / 24)
}

// daysInMonth memanfaatkan normalisasi time.Date (hari 0 = hari terakhir bulan
// sebelumnya); m boleh di luar 1..12.
func daysInMonth(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
