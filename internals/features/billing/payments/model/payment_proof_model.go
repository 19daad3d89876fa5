package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentProofStatus string

const (
	PaymentProofPending  PaymentProofStatus = "pending"
	PaymentProofApproved PaymentProofStatus = "approved"
	PaymentProofRejected PaymentProofStatus = "rejected"
)

func (s PaymentProofStatus) Valid() bool {
	switch s {
	case PaymentProofPending, PaymentProofApproved, PaymentProofRejected:
		return true
	default:
		return false
	}
}

// Decided = status final; proof yang sudah diputuskan tidak boleh berubah lagi.
func (s PaymentProofStatus) Decided() bool {
	return s == PaymentProofApproved || s == PaymentProofRejected
}

// PaymentProofModel — bukti pembayaran iuran bulanan. Append-only:
// proof tidak pernah dihapus, penolakan membuka kesempatan upload ulang.
// Maksimal satu proof approved per (member, bulan, tahun) dijaga partial
// unique index di bawah.
type PaymentProofModel struct {
	PaymentProofID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:payment_proof_id" json:"payment_proof_id"`

	PaymentProofMemberID uuid.UUID `gorm:"type:uuid;not null;index;column:payment_proof_member_id;uniqueIndex:uq_payment_proofs_approved,where:payment_proof_status = 'approved'" json:"payment_proof_member_id"`
	PaymentProofMonth    int       `gorm:"not null;column:payment_proof_month;uniqueIndex:uq_payment_proofs_approved,where:payment_proof_status = 'approved'" json:"payment_proof_month"`
	PaymentProofYear     int       `gorm:"not null;column:payment_proof_year;uniqueIndex:uq_payment_proofs_approved,where:payment_proof_status = 'approved'" json:"payment_proof_year"`

	PaymentProofStatus PaymentProofStatus `gorm:"type:varchar(16);not null;default:'pending';column:payment_proof_status" json:"payment_proof_status"`

	// Metadata file upload (URL, nama asli, ukuran) — storage-nya di luar core.
	PaymentProofFileMeta datatypes.JSON `gorm:"column:payment_proof_file_meta" json:"payment_proof_file_meta,omitempty"`

	// Diisi saat approve; basis pergeseran jatuh tempo rolling.
	PaymentProofPaymentDate *time.Time `gorm:"type:date;column:payment_proof_payment_date" json:"payment_proof_payment_date,omitempty"`

	PaymentProofDecidedAt *time.Time `gorm:"column:payment_proof_decided_at" json:"payment_proof_decided_at,omitempty"`
	PaymentProofDecidedBy *uuid.UUID `gorm:"type:uuid;column:payment_proof_decided_by" json:"payment_proof_decided_by,omitempty"`

	PaymentProofUploadedAt time.Time `gorm:"column:payment_proof_uploaded_at;autoCreateTime" json:"payment_proof_uploaded_at"`
}

func (PaymentProofModel) TableName() string { return "payment_proofs" }
