package application

import (
	"time"

	"github.com/DanielPopoola/payment-gateway/internal/domain"
	"github.com/go-playground/validator"
)

const (
	MsgCardNumberEmpty   = "CardNumber must not be empty."
	MsgCardNumberNumeric = "CardNumber must be numeric."
	MsgCardNumberLength  = "CardNumber must be between 14 and 19 characters long."
	MsgExpiryMonthRange  = "ExpiryMonth must be between 1 and 12."
	MsgExpiryInPast      = "Card expiry date must not be in the past."
	MsgCurrencyCode      = "Currency must be a valid 3-letter ISO currency code."
	MsgAmountPositive    = "Amount must be a positive integer in minor currency units."
	MsgCVVNumeric        = "CVV must be numeric."
	MsgCVVLength         = "CVV must be 3 or 4 digits long."

	// ViolationSeparator joins violation messages into a single fail reason.
	ViolationSeparator = "; "
)

type rule struct {
	message string
	valid   func(v *PaymentRequestValidator, req domain.PaymentRequest) bool
}

// rules are evaluated in order and none short-circuits the others.
var rules = []rule{
	{MsgCardNumberEmpty, tagged(cardNumber, "required")},
	{MsgCardNumberNumeric, tagged(cardNumber, "digits")},
	{MsgCardNumberLength, tagged(cardNumber, "min=14,max=19")},
	{MsgExpiryMonthRange, tagged(expiryMonth, "min=1,max=12")},
	{MsgExpiryInPast, (*PaymentRequestValidator).notExpired},
	{MsgCurrencyCode, tagged(currency, "len=3")},
	{MsgAmountPositive, tagged(amount, "gt=0")},
	{MsgCVVNumeric, tagged(cvv, "digits")},
	{MsgCVVLength, tagged(cvv, "min=3,max=4")},
}

func tagged(field func(domain.PaymentRequest) any, tag string) func(*PaymentRequestValidator, domain.PaymentRequest) bool {
	return func(v *PaymentRequestValidator, req domain.PaymentRequest) bool {
		return v.validate.Var(field(req), tag) == nil
	}
}

func cardNumber(req domain.PaymentRequest) any  { return req.CardNumber }
func expiryMonth(req domain.PaymentRequest) any { return req.ExpiryMonth }
func currency(req domain.PaymentRequest) any    { return req.Currency }
func amount(req domain.PaymentRequest) any      { return req.Amount }
func cvv(req domain.PaymentRequest) any         { return req.CVV }

// PaymentRequestValidator checks the syntax of a payment request. It performs no I/O.
type PaymentRequestValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewPaymentRequestValidator returns a validator reading the current month from now.
// A nil now uses time.Now.
func NewPaymentRequestValidator(now func() time.Time) *PaymentRequestValidator {
	if now == nil {
		now = time.Now
	}

	v := validator.New()
	_ = v.RegisterValidation("digits", isDigits)

	return &PaymentRequestValidator{
		validate: v,
		now:      now,
	}
}

func (v *PaymentRequestValidator) Validate(req domain.PaymentRequest) []string {
	var violations []string
	for _, r := range rules {
		if !r.valid(v, req) {
			violations = append(violations, r.message)
		}
	}
	return violations
}

// notExpired treats the current UTC month as still valid.
func (v *PaymentRequestValidator) notExpired(req domain.PaymentRequest) bool {
	now := v.now().UTC()
	year, month := now.Year(), int(now.Month())

	return req.ExpiryYear > year || (req.ExpiryYear == year && req.ExpiryMonth >= month)
}

func isDigits(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
