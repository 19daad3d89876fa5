package service

import (
	"crypto/sha512"
	"encoding/hex"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"silatku_backend/internals/features/billing/dues/model"
)

var SnapClient snap.Client

var serverKey string

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(key string, useProd bool) {
	serverKey = key
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	SnapClient.New(key, env)
}

// GenerateSnapToken membuat token Snap Midtrans untuk satu transaksi iuran.
func GenerateSnapToken(tx model.DuesTransactionModel, name string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  tx.DuesTransactionOrderID,
			GrossAmt: tx.DuesTransactionAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// VerifySignature mencocokkan signature_key notifikasi:
// sha512(order_id + status_code + gross_amount + server_key).
func VerifySignature(orderID, statusCode, grossAmount, signatureKey string) bool {
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:]) == signatureKey
}
