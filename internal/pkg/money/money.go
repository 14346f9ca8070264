// Package money represents amounts as integer minor units with an ISO 4217
// currency code. Supplier-facing display strings are parsed exactly once at
// the adapter boundary; no float arithmetic is ever applied to amounts.
package money

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidPrice     = errors.New("invalid price string")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrNegativeAmount   = errors.New("amount cannot be negative")
)

type Money struct {
	minorUnits int64
	currency   string
}

func New(minorUnits int64, currency string) (Money, error) {
	if minorUnits < 0 {
		return Money{}, ErrNegativeAmount
	}
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if len(cur) != 3 {
		return Money{}, fmt.Errorf("invalid currency code %q", currency)
	}
	return Money{minorUnits: minorUnits, currency: cur}, nil
}

func Zero(currency string) Money {
	return Money{minorUnits: 0, currency: strings.ToUpper(currency)}
}

func (m Money) MinorUnits() int64 { return m.minorUnits }
func (m Money) Currency() string  { return m.currency }
func (m Money) IsZero() bool      { return m.minorUnits == 0 }

func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return Money{minorUnits: m.minorUnits + other.minorUnits, currency: m.currency}, nil
}

func (m Money) MultiplyQty(qty int) Money {
	return Money{minorUnits: m.minorUnits * int64(qty), currency: m.currency}
}

// Display renders the amount the way the supplier does ("EUR 15.00").
func (m Money) Display() string {
	return fmt.Sprintf("%s %d.%02d", m.currency, m.minorUnits/100, m.minorUnits%100)
}

// displayPriceRe matches supplier price strings such as "EUR 15.00",
// "eur 15", "USD 1299.50". Thousands separators are not produced by the
// supplier and are rejected.
var displayPriceRe = regexp.MustCompile(`^([A-Za-z]{3})\s+(\d+)(?:\.(\d{1,2}))?$`)

// ParseDisplayPrice converts a supplier display string into minor units.
// This is the single place where decimal price text enters the system.
func ParseDisplayPrice(s string) (Money, error) {
	matches := displayPriceRe.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	currency := strings.ToUpper(matches[1])
	major, err := strconv.ParseInt(matches[2], 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	var minor int64
	if matches[3] != "" {
		frac := matches[3]
		if len(frac) == 1 {
			frac += "0"
		}
		minor, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
		}
	}

	return Money{minorUnits: major*100 + minor, currency: currency}, nil
}

// Sum adds amounts, requiring a uniform currency. An empty slice sums to
// zero in the given fallback currency.
func Sum(fallbackCurrency string, amounts ...Money) (Money, error) {
	total := Zero(fallbackCurrency)
	for _, a := range amounts {
		var err error
		total, err = total.Add(a)
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}
