package cmd

import (
	"context"
	"errors"
	"flag"

	"github.com/etnz/compound"
	"github.com/google/subcommands"
)

const contributeArguments = `Please run with arguments:
	Initial deposit,
	Length of investment in years,
	Interest rate, X.XX
	Compound frequency, yearly, monthly or daily
	Contribution amount,
	Contribution frequency, yearly, monthly or daily
`

type contributeCmd struct{}

func (*contributeCmd) Name() string { return "contribute" }
func (*contributeCmd) Synopsis() string {
	return "validate a projection with periodic contributions"
}
func (*contributeCmd) Usage() string {
	return `compound contribute <deposit> <years> <rate> <compoundFrequency> <contribution> <contributionFrequency>

  Parses and validates the six fields of a projection with periodic
  contributions. No amount is computed from the contributions: on success
  nothing is printed. Frequencies are yearly, monthly or daily.
`
}

func (*contributeCmd) SetFlags(f *flag.FlagSet) {}

func (*contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := compound.ParseContributionInput(f.Args())
	if errors.Is(err, compound.ErrArgumentCount) {
		return usage(contributeArguments)
	}
	if err != nil {
		return fail(err)
	}
	tracef("contributing %s %s to %v", in.Contribution, in.ContributionFrequency, in.Input)
	return subcommands.ExitSuccess
}
