package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/payment-gateway/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PaymentStore struct {
	db Executor
}

func NewPaymentStore(db *DB) *PaymentStore {
	return &PaymentStore{db: db.Pool}
}

// WithExecutor returns a store bound to exec, typically a pgx.Tx.
func (s *PaymentStore) WithExecutor(exec Executor) *PaymentStore {
	return &PaymentStore{db: exec}
}

func (s *PaymentStore) Add(ctx context.Context, record domain.PaymentRecord) error {
	query := `
		INSERT INTO payments (
			id, status, fail_reason, currency, card_number_last_four,
			expiry_month, expiry_year, amount, authorization_code, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	p := toDBModel(record)
	_, err := s.db.Exec(ctx, query,
		p.ID,
		p.Status,
		p.FailReason,
		p.Currency,
		p.CardNumberLastFour,
		p.ExpiryMonth,
		p.ExpiryYear,
		p.Amount,
		p.AuthorizationCode,
		p.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("add payment %s: %w", record.ID, domain.ErrDuplicatePayment)
		}
		return fmt.Errorf("failed to add payment: %w", err)
	}

	return nil
}

// Get retrieves a payment by id
func (s *PaymentStore) Get(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error) {
	query := `
		SELECT id, status, fail_reason, currency, card_number_last_four,
		       expiry_month, expiry_year, amount, authorization_code, created_at
		FROM payments WHERE id = $1
	`

	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("query payment: %w", err)
	}

	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[PaymentModel])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return toDomainModel(m), nil
}
