package testdata

import "time"

// Test cards understood by the stub acquiring bank. The bank decides on the
// last digit of the card number: odd authorizes, even declines, zero is unavailable.
type TestCard struct {
	CardNumber  string
	CVV         string
	ExpiryMonth int
	ExpiryYear  int
	Description string
}

var (
	AuthorizedCard = TestCard{
		CardNumber:  "2222405343248877",
		CVV:         "123",
		ExpiryMonth: 4,
		ExpiryYear:  time.Now().UTC().Year() + 1,
		Description: "Odd last digit, authorized",
	}

	DeclinedCard = TestCard{
		CardNumber:  "2222405343248112",
		CVV:         "456",
		ExpiryMonth: 1,
		ExpiryYear:  time.Now().UTC().Year() + 2,
		Description: "Even last digit, declined",
	}

	UnavailableCard = TestCard{
		CardNumber:  "2222405343248110",
		CVV:         "789",
		ExpiryMonth: 9,
		ExpiryYear:  time.Now().UTC().Year() + 1,
		Description: "Bank answers 503",
	}

	ExpiredCard = TestCard{
		CardNumber:  "2222405343248877",
		CVV:         "321",
		ExpiryMonth: 3,
		ExpiryYear:  2020,
		Description: "Expired card",
	}
)
