package controller

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"silatku_backend/internals/features/billing/payments/model"
	helperAuth "silatku_backend/internals/helpers/auth"
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

func uploadApp(db *gorm.DB, memberID *uuid.UUID) *fiber.App {
	app := fiber.New()
	ctrl := NewPaymentProofController(db)
	app.Post("/payment-proofs", func(c *fiber.Ctx) error {
		if memberID != nil {
			c.Locals(helperAuth.LocMemberID, memberID.String())
		}
		return c.Next()
	}, ctrl.UploadPaymentProof)
	return app
}

// Scope anggota diambil dari token — body tidak bisa menyisipkan member lain.
func TestUploadPaymentProof_MemberScopeFromToken(t *testing.T) {
	db, mock := newMockDB(t)
	memberID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "payment_proofs"`).
		WithArgs(memberID, 5, 2025, model.PaymentProofRejected).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payment_proofs"`).
		WillReturnRows(sqlmock.NewRows([]string{"payment_proof_id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	app := uploadApp(db, &memberID)
	// Body mencoba menyelundupkan member lain — field-nya tidak ada di request.
	body := bytes.NewBufferString(`{"payment_proof_member_id":"` + uuid.New().String() + `","payment_proof_month":5,"payment_proof_year":2025}`)
	req := httptest.NewRequest(fiber.MethodPost, "/payment-proofs", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Tanpa member_id di token (mis. token admin) upload ditolak 401.
func TestUploadPaymentProof_NoMemberScope(t *testing.T) {
	db, mock := newMockDB(t)

	app := uploadApp(db, nil)
	body := bytes.NewBufferString(`{"payment_proof_month":5,"payment_proof_year":2025}`)
	req := httptest.NewRequest(fiber.MethodPost, "/payment-proofs", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
