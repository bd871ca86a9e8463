package compound

import "fmt"

// Years is an investment duration in whole years.
type Years uint32

// Input holds the validated fields of a projection request.
type Input struct {
	Principal Cents
	Rate      Rate
	Years     Years
	Frequency Frequency
}

func (in Input) String() string {
	return fmt.Sprintf("%s at %s compounded %s for %d years", in.Principal, in.Rate, in.Frequency, in.Years)
}

func (in Input) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("principal", in.Principal)
	w.Append("rate", in.Rate)
	w.Append("years", in.Years)
	w.Append("frequency", in.Frequency)
	return w.MarshalJSON()
}

// ContributionInput extends Input with a periodic contribution.
//
// The contribution fields are validated and carried, but no calculation consumes them.
type ContributionInput struct {
	Input
	Contribution          Cents
	ContributionFrequency Frequency
}

func (in ContributionInput) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(in.Input)
	w.Append("contribution", in.Contribution)
	w.Append("contributionFrequency", in.ContributionFrequency)
	return w.MarshalJSON()
}
