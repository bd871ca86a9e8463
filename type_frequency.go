package compound

import (
	"encoding/json"
	"strings"
)

// Frequency defines how many times per year interest or contributions are applied.
type Frequency int

const (
	// Yearly applies once a year.
	Yearly Frequency = iota + 1
	// Monthly applies twelve times a year.
	Monthly
	// Daily applies 365 times a year.
	Daily
)

func (f Frequency) String() string {
	switch f {
	case Yearly:
		return "yearly"
	case Monthly:
		return "monthly"
	case Daily:
		return "daily"
	default:
		return "unknown"
	}
}

// PeriodsPerYear returns the number of periods in a year, 0 for an unknown frequency.
func (f Frequency) PeriodsPerYear() uint64 {
	switch f {
	case Yearly:
		return 1
	case Monthly:
		return 12
	case Daily:
		return 365
	default:
		return 0
	}
}

func (f Frequency) MarshalJSON() ([]byte, error) { return json.Marshal(f.String()) }

// FrequencySet is the list of frequencies a command accepts.
type FrequencySet []Frequency

var (
	// BaseFrequencies are accepted for the compound frequency of a projection.
	BaseFrequencies = FrequencySet{Yearly, Monthly}
	// ExtendedFrequencies are accepted by the contribution variant.
	ExtendedFrequencies = FrequencySet{Yearly, Monthly, Daily}
)

// Names returns the lowercase names of the set, in order.
func (s FrequencySet) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.String()
	}
	return names
}

// Lookup finds a frequency by name, ignoring case.
func (s FrequencySet) Lookup(name string) (Frequency, bool) {
	name = strings.ToLower(name)
	for _, f := range s {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}

// String returns the names joined with " or ", for usage messages.
func (s FrequencySet) String() string {
	names := s.Names()
	if len(names) <= 1 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
