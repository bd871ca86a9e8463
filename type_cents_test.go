package compound

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCents_String(t *testing.T) {
	tests := []struct {
		c    Cents
		want string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1050, "10.50"},
		{160000, "1600.00"},
		{math.MaxUint64, "184467440737095516.15"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Cents(%d).String() = %q, want %q", uint64(tt.c), got, tt.want)
		}
	}
}

func TestCents_Decimal(t *testing.T) {
	if got, want := Cents(162889).Decimal(), decimal.RequireFromString("1628.89"); !got.Equal(want) {
		t.Errorf("Decimal() = %s, want %s", got, want)
	}
}

func TestCents_Format(t *testing.T) {
	got, err := Cents(162889).Format("USD")
	if err != nil {
		t.Fatalf("Format(USD) unexpected error: %v", err)
	}
	if want := "$1,628.89"; got != want {
		t.Errorf("Format(USD) = %q, want %q", got, want)
	}

	for _, code := range []string{"XYZ", "JPY"} {
		if _, err := Cents(100).Format(code); err == nil {
			t.Errorf("Format(%s): expected an error", code)
		}
	}
	if _, err := Cents(math.MaxUint64).Format("USD"); err == nil {
		t.Error("Format of an amount beyond int64: expected an error")
	}
}

func TestRate_String(t *testing.T) {
	tests := []struct {
		r    Rate
		want string
	}{
		{525, "5.25%"},
		{550, "5.50%"},
		{7, "0.07%"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Rate(%d).String() = %q, want %q", uint64(tt.r), got, tt.want)
		}
	}
	if got, want := Rate(525).Decimal(), decimal.RequireFromString("0.0525"); !got.Equal(want) {
		t.Errorf("Rate(525).Decimal() = %s, want %s", got, want)
	}
}

func TestFrequencySet(t *testing.T) {
	if got, want := BaseFrequencies.String(), "yearly or monthly"; got != want {
		t.Errorf("BaseFrequencies.String() = %q, want %q", got, want)
	}
	if got, want := ExtendedFrequencies.String(), "yearly, monthly or daily"; got != want {
		t.Errorf("ExtendedFrequencies.String() = %q, want %q", got, want)
	}
	for f, want := range map[Frequency]uint64{Yearly: 1, Monthly: 12, Daily: 365, 0: 0} {
		if got := f.PeriodsPerYear(); got != want {
			t.Errorf("%v.PeriodsPerYear() = %d, want %d", f, got, want)
		}
	}
}

func TestNewCents(t *testing.T) {
	tests := []struct {
		text    string
		want    Cents
		wantErr bool
	}{
		{text: "1628.89", want: 162889},
		{text: "1628.899", want: 162889},
		{text: "0", want: 0},
		{text: "-1", wantErr: true},
		{text: "184467440737095516.16", wantErr: true},
	}
	for _, tt := range tests {
		got, err := NewCents(decimal.RequireFromString(tt.text))
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewCents(%s): expected an error", tt.text)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewCents(%s) unexpected error: %v", tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NewCents(%s) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
