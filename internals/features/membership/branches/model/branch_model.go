package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BranchModel struct {
	BranchID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:branch_id" json:"branch_id"`

	BranchName     string  `gorm:"not null;column:branch_name"      json:"branch_name"`
	BranchCity     *string `gorm:"column:branch_city"               json:"branch_city,omitempty"`
	BranchAddress  *string `gorm:"column:branch_address"            json:"branch_address,omitempty"`
	BranchIsActive bool    `gorm:"not null;default:true;column:branch_is_active" json:"branch_is_active"`

	BranchCreatedAt time.Time      `gorm:"column:branch_created_at;autoCreateTime" json:"branch_created_at"`
	BranchUpdatedAt *time.Time     `gorm:"column:branch_updated_at;autoUpdateTime" json:"branch_updated_at,omitempty"`
	BranchDeletedAt gorm.DeletedAt `gorm:"column:branch_deleted_at;index"          json:"branch_deleted_at,omitempty"`
}

func (BranchModel) TableName() string { return "branches" }
