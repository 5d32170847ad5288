package application

import (
	"context"

	"github.com/DanielPopoola/payment-gateway/internal/domain"
	"github.com/google/uuid"
)

// BankClient is the port for the acquiring bank.
// Implementations return either a response or an error, never both and never neither.
type BankClient interface {
	Authorize(ctx context.Context, req domain.BankAuthorizationRequest) (*domain.BankAuthorizationResponse, error)
}

// PaymentStore is the port for persistence. Records are append-only.
type PaymentStore interface {
	Add(ctx context.Context, record domain.PaymentRecord) error
	Get(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error)
}

// RequestValidator returns one message per violated rule, empty when req is valid.
type RequestValidator interface {
	Validate(req domain.PaymentRequest) []string
}
