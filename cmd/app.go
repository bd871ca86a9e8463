// Package cmd implements the CLI application computing compound interest.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/etnz/compound"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// verbose traces intermediate values on stderr, set by the top level -v flag.
var verbose bool

// stdout receives results and diagnostics.
var stdout io.Writer = os.Stdout

// commands are the calculator subcommands, in help order.
var commands = []subcommands.Command{
	&projectCmd{},
	&contributeCmd{},
	&scheduleCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range commands {
		c.Register(cmd, "calculator")
	}
	c.Register(&topicCmd{}, "help")
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// Run parses the top level flags in args, and executes the selected command.
// Every failure, a command line that cannot be parsed included, exits with
// subcommands.ExitFailure.
func Run(ctx context.Context, name string, args []string) subcommands.ExitStatus {
	top := flag.NewFlagSet(name, flag.ContinueOnError)
	top.SetOutput(io.Discard)
	top.BoolVar(&verbose, "v", false, "trace parsed fields and intermediate values on stderr")

	commander := subcommands.NewCommander(top, name)
	Register(commander)

	if err := top.Parse(ResolveArgs(top, args)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			top.Parse([]string{"help"})
			return commander.Execute(ctx)
		}
		fmt.Fprintln(stdout, err)
		return subcommands.ExitFailure
	}
	if status := commander.Execute(ctx); status != subcommands.ExitUsageError {
		return status
	}
	return subcommands.ExitFailure
}

// DefaultCommand runs when the command line does not start with a command name.
const DefaultCommand = "project"

// ResolveArgs returns the command line to execute.
//
// Arguments not starting with a command name run DefaultCommand. Arguments
// are separated from flags with "--", so that a negative number like "-5"
// reaches the command as an argument, and fails to parse there.
func ResolveArgs(top *flag.FlagSet, args []string) []string {
	i := firstOperand(top, args)
	head, rest := args[:i], args[i:]
	if len(rest) == 0 || !isCommand(rest[0]) {
		if len(rest) > 0 && rest[0] == "--" {
			rest = rest[1:]
		}
		return join(head, []string{DefaultCommand, "--"}, rest)
	}

	c := lookupCommand(rest[0])
	if c == nil {
		// help commands have no numeric arguments.
		return args
	}
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	cmdArgs := rest[1:]
	j := firstOperand(f, cmdArgs)
	if j == len(cmdArgs) || !isNegativeNumber(cmdArgs[j]) {
		return args
	}
	return join(head, []string{rest[0]}, cmdArgs[:j], []string{"--"}, cmdArgs[j:])
}

// firstOperand returns the index of the first element of args that f does not
// parse as a flag or a flag value. A negative number is an operand.
func firstOperand(f *flag.FlagSet, args []string) int {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" || a == "-" || !strings.HasPrefix(a, "-") || isNegativeNumber(a) {
			return i
		}
		name, _, hasValue := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if fl := f.Lookup(name); fl != nil && !hasValue && !isBoolFlag(fl) {
			i++ // the next argument is the value.
		}
	}
	return len(args)
}

func isBoolFlag(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// isNegativeNumber reports whether a looks like "-5" or "-.5" rather than a flag.
func isNegativeNumber(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}
	return a[1] == '.' || ('0' <= a[1] && a[1] <= '9')
}

// join concatenates parts into a new slice.
func join(parts ...[]string) []string {
	var res []string
	for _, p := range parts {
		res = append(res, p...)
	}
	return res
}

func isCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	return lookupCommand(name) != nil
}

// lookupCommand returns the command with flags called name, or nil.
func lookupCommand(name string) subcommands.Command {
	if name == (&topicCmd{}).Name() {
		return &topicCmd{}
	}
	for _, c := range commands {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func tracef(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// warnPartialRate warns that the fractional part of the rate does not compound.
func warnPartialRate(r compound.Rate) {
	if r%compound.RateScale != 0 {
		log.Printf("warning, only whole percents compound: %v grows like %d.00%%", r, r.Percent())
	}
}

// fail prints a one line diagnostic for err.
func fail(err error) subcommands.ExitStatus {
	var perr *compound.ParseError
	switch {
	case errors.As(err, &perr):
		tracef("invalid %s: %v", perr.Field, perr.Err)
	case errors.Is(err, compound.ErrOverflow):
		tracef("computation stopped: %v", err)
	}
	fmt.Fprintln(stdout, err)
	return subcommands.ExitFailure
}

// usage prints the expected arguments after a wrong argument count.
func usage(expected string) subcommands.ExitStatus {
	fmt.Fprint(stdout, expected)
	return subcommands.ExitFailure
}
