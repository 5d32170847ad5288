package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-gateway/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber:  "4111111111111111",
		ExpiryMonth: 4,
		ExpiryYear:  2030,
		Currency:    "USD",
		Amount:      100,
		CVV:         "123",
	}
}

func TestCardNumberLastFour(t *testing.T) {
	tests := []struct {
		name string
		card string
		want int
	}{
		{"sixteen digit card", "4111111111111111", 1111},
		{"leading zeros in tail", "4111111111110042", 42},
		{"exactly four digits", "9876", 9876},
		{"shorter than four", "123", 0},
		{"empty", "", 0},
		{"non numeric", "aasssdss", 0},
		{"non numeric tail", "41111111111111ab", 0},
		{"signed tail", "411111111111+123", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CardNumberLastFour(tt.card))
		})
	}
}

func TestPaymentRequest_ToBankAuthorizationRequest(t *testing.T) {
	t.Run("maps fields and renders expiry without padding", func(t *testing.T) {
		bankReq := validRequest().ToBankAuthorizationRequest()

		assert.Equal(t, "4111111111111111", bankReq.CardNumber)
		assert.Equal(t, "4/2030", bankReq.ExpiryDate)
		assert.Equal(t, "USD", bankReq.Currency)
		assert.Equal(t, int64(100), bankReq.Amount)
		assert.Equal(t, "123", bankReq.CVV)
	})

	t.Run("uses the bank wire field names", func(t *testing.T) {
		body, err := json.Marshal(validRequest().ToBankAuthorizationRequest())
		require.NoError(t, err)

		assert.JSONEq(t,
			`{"card_number":"4111111111111111","expiry_date":"4/2030","currency":"USD","amount":100,"cvv":"123"}`,
			string(body),
		)
	})
}

func TestNewPaymentRecord(t *testing.T) {
	id := uuid.New()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	record := domain.NewPaymentRecord(id, domain.StatusDeclined, "service unavailable", validRequest(), now)

	assert.Equal(t, id, record.ID)
	assert.Equal(t, domain.StatusDeclined, record.Status)
	assert.Equal(t, "service unavailable", record.FailReason)
	assert.Equal(t, 1111, record.CardNumberLastFour)
	assert.Equal(t, "USD", record.Currency)
	assert.Equal(t, 4, record.ExpiryMonth)
	assert.Equal(t, 2030, record.ExpiryYear)
	assert.Equal(t, int64(100), record.Amount)
	assert.Nil(t, record.AuthorizationCode)
	assert.Equal(t, now, record.CreatedAt)
}

func TestPaymentRecord_ToResponse(t *testing.T) {
	code := "AUTH-XYZ"
	record := domain.NewPaymentRecord(uuid.New(), domain.StatusAuthorized, "", validRequest(), time.Now())
	record.AuthorizationCode = &code
	record.FailReason = "internal note"

	body, err := json.Marshal(record.ToResponse())
	require.NoError(t, err)

	assert.NotContains(t, string(body), "internal note")
	assert.NotContains(t, string(body), "AUTH-XYZ")
	assert.NotContains(t, string(body), "4111111111111111")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "Authorized", decoded["status"])
	assert.Equal(t, float64(1111), decoded["card_number_last_four"])
	assert.Equal(t, record.ID.String(), decoded["id"])
}
