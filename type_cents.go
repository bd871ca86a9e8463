package compound

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Cents represents a non negative monetary amount as a count of cents.
type Cents uint64

// NewCents converts an amount in major units to cents, sub-cent digits are truncated.
func NewCents(d decimal.Decimal) (Cents, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("negative amount %s", d)
	}
	b := d.Shift(2).BigInt()
	if !b.IsUint64() {
		return 0, fmt.Errorf("amount %s: %w", d, ErrOverflow)
	}
	return Cents(b.Uint64()), nil
}

// Dollars returns the whole part of the amount.
func (c Cents) Dollars() uint64 { return uint64(c) / 100 }

// Remainder returns the cents left once the whole part is removed.
func (c Cents) Remainder() uint64 { return uint64(c) % 100 }

// String returns the amount as "<dollars>.<cents>", cents zero-padded.
func (c Cents) String() string { return fmt.Sprintf("%d.%02d", c.Dollars(), c.Remainder()) }

// Decimal returns the amount in major units.
func (c Cents) Decimal() decimal.Decimal { return decimal.NewFromUint64(uint64(c)).Shift(-2) }

// Format renders the amount with the symbol and grouping of a currency.
// Only currencies with two fractional digits are accepted since the amount is in cents.
func (c Cents) Format(code string) (string, error) {
	cur := money.GetCurrency(code)
	if cur == nil {
		return "", fmt.Errorf("unknown currency %q", code)
	}
	if cur.Fraction != 2 {
		return "", fmt.Errorf("currency %s has %d fractional digits, cents need 2", code, cur.Fraction)
	}
	if uint64(c) > math.MaxInt64 {
		return "", fmt.Errorf("cannot format %s: %w", c, ErrOverflow)
	}
	return money.New(int64(c), cur.Code).Display(), nil
}

// MarshalJSON writes the amount as a JSON number with exactly two decimals.
func (c Cents) MarshalJSON() ([]byte, error) {
	return json.Marshal(json.Number(c.String()))
}
