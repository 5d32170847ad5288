package testhelpers

import (
	"io"
	"log/slog"
	"time"

	"github.com/DanielPopoola/payment-gateway/internal/domain"
)

// DefaultPaymentRequest returns a valid request expiring in December of next year.
func DefaultPaymentRequest() domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber:  "4111111111111111",
		ExpiryMonth: 12,
		ExpiryYear:  time.Now().UTC().Year() + 1,
		Currency:    "USD",
		Amount:      100,
		CVV:         "123",
	}
}

// InvalidPaymentRequest fails the card number, expiry, currency and CVV rules.
func InvalidPaymentRequest() domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber:  "abcd",
		ExpiryMonth: 12,
		ExpiryYear:  2000,
		Currency:    "US",
		Amount:      100,
		CVV:         "xx",
	}
}

func AuthorizedResponse(code string) *domain.BankAuthorizationResponse {
	return &domain.BankAuthorizationResponse{
		Authorized:        true,
		AuthorizationCode: &code,
	}
}

func DeclinedResponse() *domain.BankAuthorizationResponse {
	return &domain.BankAuthorizationResponse{Authorized: false}
}

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
