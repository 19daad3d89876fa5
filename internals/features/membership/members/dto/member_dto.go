// file: internals/features/membership/members/dto/member_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"silatku_backend/internals/features/membership/members/model"
)

/* =========================================================
   REQUEST: Create / Update
   ========================================================= */

type CreateMemberRequest struct {
	MemberBranchID uuid.UUID `json:"member_branch_id" validate:"required"`
	MemberFullName string    `json:"member_full_name" validate:"required,max=120"`
	MemberAgeGroup *string   `json:"member_age_group" validate:"omitempty,max=40"`

	// "YYYY-MM-DD"
	MemberRegistrationDate *string `json:"member_registration_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateMemberRequest) ToModel() *model.MemberModel {
	m := &model.MemberModel{
		MemberBranchID: r.MemberBranchID,
		MemberFullName: r.MemberFullName,
		MemberAgeGroup: r.MemberAgeGroup,
		MemberStatus:   model.MemberStatusActive,
	}
	if r.MemberRegistrationDate != nil {
		if d, err := time.Parse("2006-01-02", *r.MemberRegistrationDate); err == nil {
			m.MemberRegistrationDate = &d
		}
	}
	return m
}

type UpdateMemberRequest struct {
	MemberFullName *string `json:"member_full_name" validate:"omitempty,max=120"`
	MemberAgeGroup *string `json:"member_age_group" validate:"omitempty,max=40"`
	MemberStatus   *string `json:"member_status"    validate:"omitempty,oneof=active inactive"`

	MemberRegistrationDate *string `json:"member_registration_date" validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

// MemberWithBillingResponse menempelkan status iuran hasil komputasi
// (tidak pernah disimpan) ke data anggota.
type MemberWithBillingResponse struct {
	Member       model.MemberModel `json:"member"`
	BillingState interface{}       `json:"billing_state"`
}
