package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/compound"
	"github.com/etnz/compound/renderer"
	"github.com/google/subcommands"
)

type scheduleCmd struct {
	raw  bool
	json bool
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "print the amount at the end of every year" }
func (*scheduleCmd) Usage() string {
	return `compound schedule [-raw] [-json] <deposit> <years> <rate> <frequency>

  Prints a table with the multiplier and the amount reached at the end of
  every year of the projection.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print the markdown source instead of rendering it")
	f.BoolVar(&c.json, "json", false, "print the schedule as JSON")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := compound.ParseInput(f.Args())
	if errors.Is(err, compound.ErrArgumentCount) {
		return usage(projectArguments)
	}
	if err != nil {
		return fail(err)
	}
	warnPartialRate(in.Rate)

	rows, err := compound.Schedule(in)
	if err != nil {
		return fail(err)
	}
	tracef("computed %d yearly rows for %v", len(rows), in)

	if c.json {
		b, err := json.Marshal(renderer.NewSchedule(in, rows))
		if err != nil {
			return fail(err)
		}
		fmt.Fprintln(stdout, string(b))
		return subcommands.ExitSuccess
	}

	md := renderer.RenderSchedule(in, rows)
	if c.raw {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
