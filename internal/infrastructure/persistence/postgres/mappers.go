package postgres

import (
	"github.com/DanielPopoola/payment-gateway/internal/domain"
)

// toDomainModel: maps db model to domain record
func toDomainModel(m PaymentModel) *domain.PaymentRecord {
	return &domain.PaymentRecord{
		ID:                 m.ID,
		Status:             domain.PaymentStatus(m.Status),
		FailReason:         m.FailReason,
		Currency:           m.Currency,
		CardNumberLastFour: int(m.CardNumberLastFour),
		ExpiryMonth:        int(m.ExpiryMonth),
		ExpiryYear:         int(m.ExpiryYear),
		Amount:             m.Amount,
		AuthorizationCode:  m.AuthorizationCode,
		CreatedAt:          m.CreatedAt,
	}
}

// toDBModel: maps domain record to db model
func toDBModel(r domain.PaymentRecord) PaymentModel {
	return PaymentModel{
		ID:                 r.ID,
		Status:             string(r.Status),
		FailReason:         r.FailReason,
		Currency:           r.Currency,
		CardNumberLastFour: int32(r.CardNumberLastFour),
		ExpiryMonth:        int32(r.ExpiryMonth),
		ExpiryYear:         int32(r.ExpiryYear),
		Amount:             r.Amount,
		AuthorizationCode:  r.AuthorizationCode,
		CreatedAt:          r.CreatedAt,
	}
}
