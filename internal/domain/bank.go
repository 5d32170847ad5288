package domain

// BankAuthorizationRequest is the wire body posted to the acquiring bank.
type BankAuthorizationRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

// BankAuthorizationResponse is a well-formed answer from the bank.
// Authorized=false is a business decline, not an error.
type BankAuthorizationResponse struct {
	Authorized        bool    `json:"authorized"`
	AuthorizationCode *string `json:"authorization_code,omitempty"`
}
