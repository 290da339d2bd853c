package core

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire format for transaction dates. The fixed-width,
// zero-padded form makes lexicographic comparison equal to chronological
// comparison, which the aggregation functions rely on.
const DateLayout = "2006-01-02"

// Transaction is a single recorded monetary event. ID is assigned by the
// store on creation and immutable afterwards.
type Transaction struct {
	ID          string
	Amount      float64
	Date        string // YYYY-MM-DD
	Description string
	Category    string
}

var (
	ErrNegativeAmount   = errors.New("amount cannot be negative")
	ErrEmptyDate        = errors.New("empty date")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category")
)

// ValidateDate checks that s is a real calendar date in DateLayout form.
func ValidateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyDate
	}
	if len(s) != len(DateLayout) {
		return ErrInvalidDate
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// Validate enforces the creation/update contract: amount non-negative (zero
// is a legitimate value), date well-formed, description and category present.
func (t Transaction) Validate() error {
	if t.Amount < 0 {
		return ErrNegativeAmount
	}
	if err := ValidateDate(t.Date); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// Month returns the year-month grouping key (first 7 bytes of the date).
func (t Transaction) Month() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}
