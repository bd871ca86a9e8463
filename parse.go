package compound

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Field names reported in parse errors.
const (
	FieldDeposit               = "initial deposit"
	FieldYears                 = "length"
	FieldRate                  = "interest rate"
	FieldFrequency             = "compound frequency"
	FieldContribution          = "contribution"
	FieldContributionFrequency = "contribution frequency"
)

// maxWhole is the largest whole part that can be scaled by 100 and receive two more digits.
const maxWhole = (math.MaxUint64 - 99) / 100

// scanNumber reads a leading "<integer>[.<fraction>]" from s.
// Leading white space is skipped and anything after the number is ignored.
// At most two fractional digits are read, further digits are left unread.
func scanNumber(s string) (whole uint64, frac uint64, digits int, err error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return 0, 0, 0, ErrNoNumber
	}
	whole, err = strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return 0, 0, 0, ErrOverflow
	}
	if i == len(s) || s[i] != '.' {
		return whole, 0, 0, nil
	}
	s = s[i+1:]
	for digits < 2 && digits < len(s) && isDigit(s[digits]) {
		frac = frac*10 + uint64(s[digits]-'0')
		digits++
	}
	return whole, frac, digits, nil
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// parseHundredths parses a two-decimal number into hundredths.
// A single fractional digit counts as tenths: "10.5" is 1050, "10.05" is 1005.
func parseHundredths(text string) (uint64, error) {
	whole, frac, digits, err := scanNumber(text)
	if err != nil {
		return 0, err
	}
	if digits == 1 {
		frac *= 10
	}
	if whole > maxWhole {
		return 0, ErrOverflow
	}
	return whole*100 + frac, nil
}

// ParseCents parses a dollar amount such as "1000", "10.5" or "10.25" into cents.
func ParseCents(text, field string) (Cents, error) {
	v, err := parseHundredths(text)
	if err != nil {
		return 0, &ParseError{Field: field, Text: text, Err: err}
	}
	return Cents(v), nil
}

// ParseRate parses a percentage such as "5", "5.5" or "5.25" into a Rate.
func ParseRate(text, field string) (Rate, error) {
	v, err := parseHundredths(text)
	if err != nil {
		return 0, &ParseError{Field: field, Text: text, Err: err}
	}
	return Rate(v), nil
}

// ParseFrequency matches text, ignoring case, against the allowed frequencies.
func ParseFrequency(text, field string, allowed FrequencySet) (Frequency, error) {
	f, ok := allowed.Lookup(text)
	if !ok {
		return 0, &ParseError{Field: field, Text: text, Err: ErrUnknownFrequency}
	}
	return f, nil
}

// ParseYears parses a non negative count of years.
func ParseYears(text, field string) (Years, error) {
	whole, _, _, err := scanNumber(text)
	if err == nil && whole > math.MaxUint32 {
		err = ErrOverflow
	}
	if err != nil {
		return 0, &ParseError{Field: field, Text: text, Err: err}
	}
	return Years(whole), nil
}

// ParseInput parses the four positional fields deposit, years, rate and frequency.
//
// Fields are checked in a fixed order (deposit, frequency, rate, length) and the
// first failure is returned.
func ParseInput(args []string) (in Input, err error) {
	if len(args) != 4 {
		return in, ErrArgumentCount
	}
	if in.Principal, err = ParseCents(args[0], FieldDeposit); err != nil {
		return in, err
	}
	if in.Frequency, err = ParseFrequency(args[3], FieldFrequency, BaseFrequencies); err != nil {
		return in, err
	}
	if in.Rate, err = ParseRate(args[2], FieldRate); err != nil {
		return in, err
	}
	if in.Years, err = ParseYears(args[1], FieldYears); err != nil {
		return in, err
	}
	return in, nil
}

// ParseContributionInput parses the six positional fields of the contribution variant:
// deposit, years, rate, compound frequency, contribution and contribution frequency.
// Daily is accepted for both frequencies.
func ParseContributionInput(args []string) (in ContributionInput, err error) {
	if len(args) != 6 {
		return in, ErrArgumentCount
	}
	if in.Principal, err = ParseCents(args[0], FieldDeposit); err != nil {
		return in, err
	}
	if in.Frequency, err = ParseFrequency(args[3], FieldFrequency, ExtendedFrequencies); err != nil {
		return in, err
	}
	if in.Rate, err = ParseRate(args[2], FieldRate); err != nil {
		return in, err
	}
	if in.Years, err = ParseYears(args[1], FieldYears); err != nil {
		return in, err
	}
	if in.Contribution, err = ParseCents(args[4], FieldContribution); err != nil {
		return in, err
	}
	if in.ContributionFrequency, err = ParseFrequency(args[5], FieldContributionFrequency, ExtendedFrequencies); err != nil {
		return in, err
	}
	return in, nil
}
