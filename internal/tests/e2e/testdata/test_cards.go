package testdata

// Test cards from the Bambora sandbox documentation
type TestCard struct {
	Number      string
	CVD         string
	Month       int
	Year        int
	Approved    bool
	Description string
}

var (
	VisaApproved = TestCard{
		Number:      "4030000010001234",
		CVD:         "123",
		Month:       12,
		Year:        2030,
		Approved:    true,
		Description: "Visa, approved",
	}

	VisaDeclined = TestCard{
		Number:      "4003050500040005",
		CVD:         "123",
		Month:       12,
		Year:        2030,
		Description: "Visa, declined",
	}

	MasterCardApproved = TestCard{
		Number:      "5100000010001004",
		CVD:         "123",
		Month:       6,
		Year:        2031,
		Approved:    true,
		Description: "MasterCard, approved",
	}

	AmexDeclined = TestCard{
		Number:      "342400001000180",
		CVD:         "1234",
		Month:       3,
		Year:        2029,
		Description: "American Express, declined",
	}
)

// Unavailable makes the fake sandbox answer with a non-JSON 503.
const Unavailable = "4000000000000002"
