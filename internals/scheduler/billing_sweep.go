// file: internals/scheduler/billing_sweep.go
//
// Sweep harian: hitung ulang status iuran semua anggota aktif dan catat yang
// overdue. Observability saja — tidak ada mutasi, status iuran tetap selalu
// dihitung per request.
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	paymentModel "silatku_backend/internals/features/billing/payments/model"
	billingService "silatku_backend/internals/features/billing/payments/service"
	memberModel "silatku_backend/internals/features/membership/members/model"
)

func StartBillingSweep(db *gorm.DB) *cron.Cron {
	c := cron.New()
	// 02:00 WIB tiap hari
	if _, err := c.AddFunc("0 19 * * *", func() { runBillingSweep(db) }); err != nil {
		log.Printf("❌ Gagal daftar billing sweep: %v", err)
		return c
	}
	c.Start()
	log.Println("⏱ Billing sweep terjadwal harian.")
	return c
}

func runBillingSweep(db *gorm.DB) {
	now := time.Now()

	var members []memberModel.MemberModel
	if err := db.Where("member_status = ?", memberModel.MemberStatusActive).Find(&members).Error; err != nil {
		log.Printf("billing sweep: gagal ambil anggota: %v", err)
		return
	}

	var proofs []paymentModel.PaymentProofModel
	if err := db.Where("payment_proof_month = ? AND payment_proof_year = ?", int(now.Month()), now.Year()).
		Find(&proofs).Error; err != nil {
		log.Printf("billing sweep: gagal ambil proof: %v", err)
		return
	}
	byMember := make(map[string][]paymentModel.PaymentProofModel, len(proofs))
	for _, p := range proofs {
		k := p.PaymentProofMemberID.String()
		byMember[k] = append(byMember[k], p)
	}

	overdue, due := 0, 0
	for i := range members {
		state := billingService.ComputeBillingState(members[i], byMember[members[i].MemberID.String()], now)
		switch state.Status {
		case billingService.BillingOverdue:
			overdue++
			days := 0
			if state.Days != nil {
				days = *state.Days
			}
			log.Printf("[IURAN] overdue: member=%s telat=%d hari", members[i].MemberID, days)
		case billingService.BillingDue:
			due++
		}
	}
	log.Printf("[IURAN] sweep selesai: %d anggota, %d due, %d overdue", len(members), due, overdue)
}
