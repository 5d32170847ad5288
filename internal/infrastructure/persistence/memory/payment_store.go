// Package memory is a process-lifetime payment store.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/DanielPopoola/payment-gateway/internal/domain"
	"github.com/google/uuid"
)

// PaymentStore keeps records by value so callers can never mutate stored state.
type PaymentStore struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]domain.PaymentRecord
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{
		payments: make(map[uuid.UUID]domain.PaymentRecord),
	}
}

func (s *PaymentStore) Add(ctx context.Context, record domain.PaymentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if record.AuthorizationCode != nil {
		code := *record.AuthorizationCode
		record.AuthorizationCode = &code
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.payments[record.ID]; exists {
		return fmt.Errorf("add payment %s: %w", record.ID, domain.ErrDuplicatePayment)
	}
	s.payments[record.ID] = record

	return nil
}

func (s *PaymentStore) Get(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	record, ok := s.payments[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrPaymentNotFound
	}

	if record.AuthorizationCode != nil {
		code := *record.AuthorizationCode
		record.AuthorizationCode = &code
	}

	return &record, nil
}

// Len reports the number of stored records.
func (s *PaymentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.payments)
}
