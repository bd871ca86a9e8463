package compound

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// RateScale is the number of Rate units in one percent.
const RateScale = 100

// Rate is an interest rate in hundredths of a percent: 5.25% is Rate(525).
type Rate uint64

// Percent returns the whole percent part of the rate, fractional part truncated.
func (r Rate) Percent() uint64 { return uint64(r) / RateScale }

// String returns the rate as a percentage with two decimals.
func (r Rate) String() string {
	return fmt.Sprintf("%d.%02d%%", uint64(r)/RateScale, uint64(r)%RateScale)
}

// Decimal returns the rate as a plain fraction (5.25% is 0.0525).
func (r Rate) Decimal() decimal.Decimal { return decimal.NewFromUint64(uint64(r)).Shift(-4) }

// MarshalJSON writes the rate as a percentage number, 5.25% is 5.25.
func (r Rate) MarshalJSON() ([]byte, error) {
	return json.Marshal(json.Number(fmt.Sprintf("%d.%02d", uint64(r)/RateScale, uint64(r)%RateScale)))
}
