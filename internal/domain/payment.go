// Package domain holds the payment records produced by the gateway and the
// shapes exchanged with callers and the acquiring bank.
package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the terminal outcome of one processing attempt.
type PaymentStatus string

const (
	StatusAuthorized PaymentStatus = "Authorized"
	StatusDeclined   PaymentStatus = "Declined"
	StatusRejected   PaymentStatus = "Rejected"
)

// DeclinedByBankReason is recorded when the bank answers authorized=false.
const DeclinedByBankReason = "Payment was declined by acquiring bank."

// PaymentRequest is the caller supplied payment instruction.
type PaymentRequest struct {
	CardNumber  string `json:"card_number" example:"4111111111111111"`
	ExpiryMonth int    `json:"expiry_month" example:"12"`
	ExpiryYear  int    `json:"expiry_year" example:"2030"`
	Currency    string `json:"currency" example:"USD"`
	Amount      int64  `json:"amount" example:"100"`
	CVV         string `json:"cvv" example:"123"`
}

// ExpiryDate renders the expiry as month/year without zero padding.
func (r PaymentRequest) ExpiryDate() string {
	return strconv.Itoa(r.ExpiryMonth) + "/" + strconv.Itoa(r.ExpiryYear)
}

func (r PaymentRequest) ToBankAuthorizationRequest() BankAuthorizationRequest {
	return BankAuthorizationRequest{
		CardNumber: r.CardNumber,
		ExpiryDate: r.ExpiryDate(),
		Currency:   r.Currency,
		Amount:     r.Amount,
		CVV:        r.CVV,
	}
}

// PaymentRecord is the stored audit entry for one processing attempt.
// Only the last four digits of the card number are kept.
type PaymentRecord struct {
	ID                 uuid.UUID
	Status             PaymentStatus
	FailReason         string
	Currency           string
	CardNumberLastFour int
	ExpiryMonth        int
	ExpiryYear         int
	Amount             int64
	AuthorizationCode  *string
	CreatedAt          time.Time
}

// NewPaymentRecord builds a record for req. The full card number never leaves this function.
func NewPaymentRecord(id uuid.UUID, status PaymentStatus, failReason string, req PaymentRequest, createdAt time.Time) PaymentRecord {
	return PaymentRecord{
		ID:                 id,
		Status:             status,
		FailReason:         failReason,
		Currency:           req.Currency,
		CardNumberLastFour: CardNumberLastFour(req.CardNumber),
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Amount:             req.Amount,
		CreatedAt:          createdAt,
	}
}

// ToResponse drops the fail reason and authorization code.
func (p PaymentRecord) ToResponse() *PaymentResponse {
	return &PaymentResponse{
		ID:                 p.ID,
		Status:             p.Status,
		CardNumberLastFour: p.CardNumberLastFour,
		ExpiryMonth:        p.ExpiryMonth,
		ExpiryYear:         p.ExpiryYear,
		Currency:           p.Currency,
		Amount:             p.Amount,
	}
}

// PaymentResponse is what callers get back from submit and lookup.
type PaymentResponse struct {
	ID                 uuid.UUID     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Status             PaymentStatus `json:"status" example:"Authorized"`
	CardNumberLastFour int           `json:"card_number_last_four" example:"1111"`
	ExpiryMonth        int           `json:"expiry_month" example:"12"`
	ExpiryYear         int           `json:"expiry_year" example:"2030"`
	Currency           string        `json:"currency" example:"USD"`
	Amount             int64         `json:"amount" example:"100"`
}

// CardNumberLastFour returns the last four digits of cardNumber as an integer.
// It returns 0 when the number is shorter than four characters or its tail is not all digits.
func CardNumberLastFour(cardNumber string) int {
	if len(cardNumber) < 4 {
		return 0
	}

	tail := cardNumber[len(cardNumber)-4:]
	for i := 0; i < len(tail); i++ {
		if tail[i] < '0' || tail[i] > '9' {
			return 0
		}
	}

	n, err := strconv.Atoi(tail)
	if err != nil {
		return 0
	}
	return n
}
