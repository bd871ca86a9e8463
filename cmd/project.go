package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/compound"
	"github.com/google/subcommands"
)

// projectArguments is printed when project does not receive four arguments.
const projectArguments = `Please run with arguments:
	Initial deposit,
	Length of investment in years,
	Interest rate, X.XX
	Compound frequency, yearly or monthly
`

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	exact    bool
	currency string
	json     bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "compute the final amount of a deposit" }
func (*projectCmd) Usage() string {
	return `compound project [-exact] [-currency <code>] [-json] <deposit> <years> <rate> <frequency>
compound <deposit> <years> <rate> <frequency>

  Compounds the deposit at rate percent per period for the given number of years.
  Frequency is yearly or monthly. Prints "Final amount: <dollars>.<cents>".

Usage Examples:
$ compound 1000.00 10 5.00 yearly
Final amount: 1600.00

`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.exact, "exact", false, "also print the amount computed with exact decimals")
	f.StringVar(&c.currency, "currency", "", "ISO code of the currency used to format amounts, e.g. USD")
	f.BoolVar(&c.json, "json", false, "print the projection as JSON")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := compound.ParseInput(f.Args())
	if errors.Is(err, compound.ErrArgumentCount) {
		return usage(projectArguments)
	}
	if err != nil {
		return fail(err)
	}
	tracef("projecting %v", in)
	warnPartialRate(in.Rate)

	p, err := compound.Project(in)
	if err != nil {
		return fail(err)
	}
	tracef("rate per period %d, %d periods, multiplier %d", p.RatePerPeriod, p.Periods, p.Multiplier)

	if c.json {
		b, err := json.Marshal(p)
		if err != nil {
			return fail(err)
		}
		fmt.Fprintln(stdout, string(b))
		return subcommands.ExitSuccess
	}

	// every line is computed before printing, a failure prints nothing but the diagnostic.
	lines := make([]string, 0, 2)
	amount, err := c.format(p.Final)
	if err != nil {
		return fail(err)
	}
	lines = append(lines, "Final amount: "+amount)

	if c.exact {
		exact, err := p.Exact()
		if err != nil {
			return fail(err)
		}
		cents, err := compound.NewCents(exact)
		if err != nil {
			return fail(err)
		}
		amount, err := c.format(cents)
		if err != nil {
			return fail(err)
		}
		lines = append(lines, "Exact amount: "+amount)
	}

	for _, line := range lines {
		fmt.Fprintln(stdout, line)
	}
	return subcommands.ExitSuccess
}

// format renders an amount in the requested currency, or as plain dollars and cents.
func (c *projectCmd) format(amount compound.Cents) (string, error) {
	if c.currency == "" {
		return amount.String(), nil
	}
	return amount.Format(c.currency)
}
