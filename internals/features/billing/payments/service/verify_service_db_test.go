package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	paymentModel "silatku_backend/internals/features/billing/payments/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func proofRows(id, memberID uuid.UUID, status paymentModel.PaymentProofStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"payment_proof_id", "payment_proof_member_id",
		"payment_proof_month", "payment_proof_year", "payment_proof_status",
	}).AddRow(id.String(), memberID.String(), 5, 2025, string(status))
}

// Approve yang menang: guarded update kena baris, lalu basis jatuh tempo
// member digeser di transaksi yang sama.
func TestVerify_ApproveShiftsMemberDateInSameTx(t *testing.T) {
	db, mock := newMockDB(t)
	proofID, memberID, adminID := uuid.New(), uuid.New(), uuid.New()
	now := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payment_proofs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "payment_proofs"`).
		WillReturnRows(proofRows(proofID, memberID, paymentModel.PaymentProofApproved))
	mock.ExpectExec(`UPDATE "members" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	out, err := Verify(db, proofID, paymentModel.PaymentProofApproved, adminID, now)
	require.NoError(t, err)
	assert.Equal(t, proofID, out.PaymentProofID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Reject hanya menandai proof — tabel members tidak boleh tersentuh.
func TestVerify_RejectDoesNotTouchMember(t *testing.T) {
	db, mock := newMockDB(t)
	proofID, memberID, adminID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payment_proofs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "payment_proofs"`).
		WillReturnRows(proofRows(proofID, memberID, paymentModel.PaymentProofRejected))
	mock.ExpectCommit()

	out, err := Verify(db, proofID, paymentModel.PaymentProofRejected, adminID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, paymentModel.PaymentProofRejected, out.PaymentProofStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Kalah balapan dengan keputusan berbeda: update tidak kena baris, re-read
// menemukan status final yang lain → ErrAlreadyDecided, transaksi rollback.
func TestVerify_LostRaceDifferentDecision(t *testing.T) {
	db, mock := newMockDB(t)
	proofID, memberID, adminID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payment_proofs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "payment_proofs"`).
		WillReturnRows(proofRows(proofID, memberID, paymentModel.PaymentProofApproved))
	mock.ExpectRollback()

	_, err := Verify(db, proofID, paymentModel.PaymentProofRejected, adminID, time.Now())
	assert.ErrorIs(t, err, ErrAlreadyDecided)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Keputusan sama diulang: no-op sukses, tanpa update member kedua.
func TestVerify_RepeatSameDecisionNoOp(t *testing.T) {
	db, mock := newMockDB(t)
	proofID, memberID, adminID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payment_proofs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "payment_proofs"`).
		WillReturnRows(proofRows(proofID, memberID, paymentModel.PaymentProofApproved))
	mock.ExpectCommit()

	out, err := Verify(db, proofID, paymentModel.PaymentProofApproved, adminID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, paymentModel.PaymentProofApproved, out.PaymentProofStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Proof tidak ada sama sekali → gorm.ErrRecordNotFound dari re-read.
func TestVerify_UnknownProofID(t *testing.T) {
	db, mock := newMockDB(t)
	proofID, adminID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payment_proofs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "payment_proofs"`).
		WillReturnRows(sqlmock.NewRows([]string{"payment_proof_id"}))
	mock.ExpectRollback()

	_, err := Verify(db, proofID, paymentModel.PaymentProofApproved, adminID, time.Now())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
