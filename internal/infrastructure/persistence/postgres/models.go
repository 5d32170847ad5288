package postgres

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors a row of the payments table.
type PaymentModel struct {
	ID                 uuid.UUID `db:"id"`
	Status             string    `db:"status"`
	FailReason         string    `db:"fail_reason"`
	Currency           string    `db:"currency"`
	CardNumberLastFour int32     `db:"card_number_last_four"`
	ExpiryMonth        int32     `db:"expiry_month"`
	ExpiryYear         int32     `db:"expiry_year"`
	Amount             int64     `db:"amount"`
	AuthorizationCode  *string   `db:"authorization_code"`
	CreatedAt          time.Time `db:"created_at"`
}
