package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case MemberStatusActive, MemberStatusInactive:
		return true
	default:
		return false
	}
}

type MemberModel struct {
	MemberID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:member_id" json:"member_id"`

	MemberBranchID uuid.UUID `gorm:"type:uuid;not null;index;column:member_branch_id" json:"member_branch_id"`

	MemberFullName string       `gorm:"not null;column:member_full_name"                      json:"member_full_name"`
	MemberStatus   MemberStatus `gorm:"type:varchar(16);not null;default:'active';column:member_status" json:"member_status"`
	MemberAgeGroup *string      `gorm:"column:member_age_group"                               json:"member_age_group,omitempty"`

	// Tanggal daftar jadi basis jatuh tempo iuran kalau belum pernah bayar.
	// Boleh kosong untuk data lama yang belum lengkap.
	MemberRegistrationDate *time.Time `gorm:"type:date;column:member_registration_date" json:"member_registration_date,omitempty"`
	MemberLastPaymentDate  *time.Time `gorm:"type:date;column:member_last_payment_date" json:"member_last_payment_date,omitempty"`

	MemberCreatedAt time.Time      `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt *time.Time     `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at,omitempty"`
	MemberDeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at;index"          json:"member_deleted_at,omitempty"`
}

func (MemberModel) TableName() string { return "members" }
