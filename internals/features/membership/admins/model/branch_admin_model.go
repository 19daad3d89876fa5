package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type BranchAdminModel struct {
	BranchAdminID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:branch_admin_id" json:"branch_admin_id"`

	BranchAdminBranchID uuid.UUID `gorm:"type:uuid;not null;index;column:branch_admin_branch_id" json:"branch_admin_branch_id"`

	BranchAdminFullName     string `gorm:"not null;column:branch_admin_full_name"          json:"branch_admin_full_name"`
	BranchAdminEmail        string `gorm:"not null;uniqueIndex;column:branch_admin_email"  json:"branch_admin_email"`
	BranchAdminPasswordHash string `gorm:"not null;column:branch_admin_password_hash"      json:"-"`
	BranchAdminIsActive     bool   `gorm:"not null;default:true;column:branch_admin_is_active" json:"branch_admin_is_active"`

	BranchAdminCreatedAt time.Time      `gorm:"column:branch_admin_created_at;autoCreateTime" json:"branch_admin_created_at"`
	BranchAdminUpdatedAt *time.Time     `gorm:"column:branch_admin_updated_at;autoUpdateTime" json:"branch_admin_updated_at,omitempty"`
	BranchAdminDeletedAt gorm.DeletedAt `gorm:"column:branch_admin_deleted_at;index"          json:"branch_admin_deleted_at,omitempty"`
}

func (BranchAdminModel) TableName() string { return "branch_admins" }

// SetPassword menyimpan hash bcrypt, bukan plaintext.
func (m *BranchAdminModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.BranchAdminPasswordHash = string(hash)
	return nil
}

func (m *BranchAdminModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(m.BranchAdminPasswordHash), []byte(plain)) == nil
}
