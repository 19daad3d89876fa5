// file: internals/features/billing/payments/service/verify_service.go
//
// State machine verifikasi: pending → {approved, rejected}, keduanya final.
// Keputusan ganda dijaga lewat guarded UPDATE satu baris (WHERE status =
// 'pending') — dua Verify bersamaan menghasilkan tepat satu pemenang.
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentModel "silatku_backend/internals/features/billing/payments/model"
	memberModel "silatku_backend/internals/features/membership/members/model"
)

var (
	// ErrAlreadyDecided: proof sudah diputuskan dengan keputusan berbeda.
	ErrAlreadyDecided = errors.New("pembayaran ini sudah diproses")

	// ErrInvalidDecision: keputusan bukan approved/rejected.
	ErrInvalidDecision = errors.New("keputusan verifikasi tidak dikenal")
)

// DecideTransition memutuskan apa yang terjadi kalau guarded update tidak kena
// baris (proof sudah tidak pending):
//   - keputusan sama dengan status sekarang → no-op sukses (apply=false)
//   - keputusan berbeda → ErrAlreadyDecided
//
// Dipisah sebagai fungsi murni supaya tabel transisinya bisa diuji tanpa DB.
func DecideTransition(current paymentModel.PaymentProofStatus, decision paymentModel.PaymentProofStatus) (apply bool, err error) {
	if !decision.Valid() || !decision.Decided() {
		return false, ErrInvalidDecision
	}
	if current == paymentModel.PaymentProofPending {
		return true, nil
	}
	if current == decision {
		return false, nil // no-op: keputusan yang sama diulang
	}
	return false, ErrAlreadyDecided
}

// Verify menjalankan transisi verifikasi secara atomik.
// Approve juga menggeser member_last_payment_date (inilah yang memajukan
// jatuh tempo rolling); reject hanya menandai proof.
func Verify(db *gorm.DB, proofID uuid.UUID, decision paymentModel.PaymentProofStatus, decidedBy uuid.UUID, now time.Time) (*paymentModel.PaymentProofModel, error) {
	if !decision.Valid() || !decision.Decided() {
		return nil, ErrInvalidDecision
	}

	var out paymentModel.PaymentProofModel
	err := db.Transaction(func(tx *gorm.DB) error {
		decidedAt := now
		updates := map[string]interface{}{
			"payment_proof_status":     decision,
			"payment_proof_decided_at": decidedAt,
			"payment_proof_decided_by": decidedBy,
		}
		var paymentDate *time.Time
		if decision == paymentModel.PaymentProofApproved {
			d := truncateToDate(now)
			paymentDate = &d
			updates["payment_proof_payment_date"] = d
		}

		// Guarded update: hanya kena kalau masih pending.
		res := tx.Model(&paymentModel.PaymentProofModel{}).
			Where("payment_proof_id = ? AND payment_proof_status = ?", proofID, paymentModel.PaymentProofPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// Tidak kena baris: proof tidak ada, atau sudah diputuskan.
			var cur paymentModel.PaymentProofModel
			if err := tx.First(&cur, "payment_proof_id = ?", proofID).Error; err != nil {
				return err // termasuk gorm.ErrRecordNotFound
			}
			if _, err := DecideTransition(cur.PaymentProofStatus, decision); err != nil {
				return err
			}
			// Keputusan sama diulang → no-op sukses, jangan sentuh member.
			out = cur
			return nil
		}

		// Approve: geser basis jatuh tempo member di transaksi yang sama.
		if decision == paymentModel.PaymentProofApproved && paymentDate != nil {
			var proof paymentModel.PaymentProofModel
			if err := tx.First(&proof, "payment_proof_id = ?", proofID).Error; err != nil {
				return err
			}
			if err := tx.Model(&memberModel.MemberModel{}).
				Where("member_id = ?", proof.PaymentProofMemberID).
				Update("member_last_payment_date", *paymentDate).Error; err != nil {
				return err
			}
			out = proof
			return nil
		}

		return tx.First(&out, "payment_proof_id = ?", proofID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
