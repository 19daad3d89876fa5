package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DuesTransactionStatus string

const (
	DuesTxInitiated DuesTransactionStatus = "initiated"
	DuesTxSettled   DuesTransactionStatus = "settled"
	DuesTxFailed    DuesTransactionStatus = "failed"
)

// DuesTransactionModel — pembayaran iuran online lewat Midtrans Snap.
// Settlement webhook yang sukses otomatis membuat PaymentProof approved.
type DuesTransactionModel struct {
	DuesTransactionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:dues_transaction_id" json:"dues_transaction_id"`

	DuesTransactionOrderID  string    `gorm:"not null;uniqueIndex;column:dues_transaction_order_id" json:"dues_transaction_order_id"`
	DuesTransactionMemberID uuid.UUID `gorm:"type:uuid;not null;index;column:dues_transaction_member_id" json:"dues_transaction_member_id"`

	DuesTransactionMonth  int   `gorm:"not null;column:dues_transaction_month"  json:"dues_transaction_month"`
	DuesTransactionYear   int   `gorm:"not null;column:dues_transaction_year"   json:"dues_transaction_year"`
	DuesTransactionAmount int64 `gorm:"not null;column:dues_transaction_amount" json:"dues_transaction_amount"`

	DuesTransactionStatus    DuesTransactionStatus `gorm:"type:varchar(16);not null;default:'initiated';column:dues_transaction_status" json:"dues_transaction_status"`
	DuesTransactionSnapToken *string               `gorm:"column:dues_transaction_snap_token" json:"dues_transaction_snap_token,omitempty"`

	// Payload notifikasi terakhir dari Midtrans, buat audit.
	DuesTransactionPayload datatypes.JSONMap `gorm:"column:dues_transaction_payload" json:"dues_transaction_payload,omitempty"`

	DuesTransactionCreatedAt time.Time  `gorm:"column:dues_transaction_created_at;autoCreateTime" json:"dues_transaction_created_at"`
	DuesTransactionUpdatedAt *time.Time `gorm:"column:dues_transaction_updated_at;autoUpdateTime" json:"dues_transaction_updated_at,omitempty"`
}

func (DuesTransactionModel) TableName() string { return "dues_transactions" }
