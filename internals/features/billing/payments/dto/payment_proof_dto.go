// file: internals/features/billing/payments/dto/payment_proof_dto.go
package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"silatku_backend/internals/features/billing/payments/model"
)

/* =========================================================
   REQUEST: Upload
   ========================================================= */

// Member ID tidak diambil dari body — scope-nya dari token (Locals), supaya
// anggota tidak bisa mengirim bukti atas nama anggota lain.
type UploadPaymentProofRequest struct {
	PaymentProofMonth int `json:"payment_proof_month" validate:"required,min=1,max=12"`
	PaymentProofYear  int `json:"payment_proof_year"  validate:"required,min=2000"`

	// Metadata file hasil upload (URL dsb.) — file-nya sendiri di storage luar.
	PaymentProofFileMeta datatypes.JSON `json:"payment_proof_file_meta"`
}

func (r *UploadPaymentProofRequest) ToModel(memberID uuid.UUID) *model.PaymentProofModel {
	return &model.PaymentProofModel{
		PaymentProofMemberID: memberID,
		PaymentProofMonth:    r.PaymentProofMonth,
		PaymentProofYear:     r.PaymentProofYear,
		PaymentProofStatus:   model.PaymentProofPending,
		PaymentProofFileMeta: r.PaymentProofFileMeta,
	}
}

/* =========================================================
   REQUEST: Verify
   ========================================================= */

type VerifyPaymentProofRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}
