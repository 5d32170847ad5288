package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DanielPopoola/payment-gateway/internal/application"
	"github.com/DanielPopoola/payment-gateway/internal/domain"
	"github.com/google/uuid"
)

// PaymentProcessor runs one payment attempt through validation, bank authorization
// and persistence. Every attempt that does not fail fatally leaves exactly one record.
type PaymentProcessor struct {
	bankClient application.BankClient
	store      application.PaymentStore
	validator  application.RequestValidator
	logger     *slog.Logger
	newID      func() uuid.UUID
	now        func() time.Time
}

type ProcessorOption func(*PaymentProcessor)

// WithClock sets the source of record creation times.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *PaymentProcessor) { p.now = now }
}

// WithIDGenerator sets the source of payment ids.
func WithIDGenerator(newID func() uuid.UUID) ProcessorOption {
	return func(p *PaymentProcessor) { p.newID = newID }
}

// NewPaymentProcessor builds a processor. A nil validator skips request validation.
func NewPaymentProcessor(
	bankClient application.BankClient,
	store application.PaymentStore,
	validator application.RequestValidator,
	logger *slog.Logger,
	opts ...ProcessorOption,
) *PaymentProcessor {
	p := &PaymentProcessor{
		bankClient: bankClient,
		store:      store,
		validator:  validator,
		logger:     logger,
		newID:      uuid.New,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process returns the outcome for req. A returned error means nothing was decided:
// either the bank client broke its contract or the record could not be stored.
func (p *PaymentProcessor) Process(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
	id := p.newID()
	logger := p.logger.With("payment_id", id)

	if p.validator != nil {
		if violations := p.validator.Validate(req); len(violations) > 0 {
			reason := strings.Join(violations, application.ViolationSeparator)
			logger.Info("payment rejected", "violations", len(violations))
			return p.save(ctx, logger, domain.NewPaymentRecord(id, domain.StatusRejected, reason, req, p.now().UTC()))
		}
	}

	bankResp, err := p.bankClient.Authorize(ctx, req.ToBankAuthorizationRequest())

	var record domain.PaymentRecord
	switch {
	case err != nil:
		logger.Warn("acquiring bank call failed", "error", err)
		record = domain.NewPaymentRecord(id, domain.StatusDeclined, failReason(err), req, p.now().UTC())

	case bankResp == nil:
		logger.Error("acquiring bank returned neither response nor error")
		return nil, application.NewInternalError(fmt.Errorf("payment %s: %w", id, application.ErrBankContractViolation))

	case bankResp.Authorized:
		record = domain.NewPaymentRecord(id, domain.StatusAuthorized, "", req, p.now().UTC())
		if bankResp.AuthorizationCode != nil {
			code := *bankResp.AuthorizationCode
			record.AuthorizationCode = &code
		}

	default:
		record = domain.NewPaymentRecord(id, domain.StatusDeclined, domain.DeclinedByBankReason, req, p.now().UTC())
	}

	return p.save(ctx, logger, record)
}

// save persists record even if the caller has gone away, so the attempt stays auditable.
func (p *PaymentProcessor) save(ctx context.Context, logger *slog.Logger, record domain.PaymentRecord) (*domain.PaymentResponse, error) {
	if err := p.store.Add(context.WithoutCancel(ctx), record); err != nil {
		logger.Error("failed to store payment", "status", record.Status, "error", err)
		return nil, application.NewInternalError(fmt.Errorf("store payment %s: %w", record.ID, err))
	}

	logger.Info("payment processed", "status", record.Status)
	return record.ToResponse(), nil
}

func failReason(err error) string {
	if bankErr, ok := application.IsBankError(err); ok {
		return bankErr.Message
	}
	return err.Error()
}
