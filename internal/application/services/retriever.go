package services

import (
	"context"
	"errors"

	"github.com/DanielPopoola/payment-gateway/internal/application"
	"github.com/DanielPopoola/payment-gateway/internal/domain"
	"github.com/google/uuid"
)

type PaymentRetriever struct {
	store application.PaymentStore
}

func NewPaymentRetriever(store application.PaymentStore) *PaymentRetriever {
	return &PaymentRetriever{
		store: store,
	}
}

// Get reports found=false with a nil error for an unknown id.
func (r *PaymentRetriever) Get(ctx context.Context, id uuid.UUID) (*domain.PaymentResponse, bool, error) {
	record, err := r.store.Get(ctx, id)
	if errors.Is(err, domain.ErrPaymentNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, application.NewInternalError(err)
	}

	return record.ToResponse(), true, nil
}
