package cmd

import (
	"bytes"
	"context"
	"flag"
	"reflect"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestResolveArgs(t *testing.T) {
	top := flag.NewFlagSet("compound", flag.ContinueOnError)
	top.Bool("v", false, "")
	tests := []struct {
		args []string
		want []string
	}{
		{args: nil, want: []string{"project", "--"}},
		{args: []string{"1000", "10", "5", "yearly"}, want: []string{"project", "--", "1000", "10", "5", "yearly"}},
		{args: []string{"-5", "10", "5", "yearly"}, want: []string{"project", "--", "-5", "10", "5", "yearly"}},
		{args: []string{"-v", "1000", "10"}, want: []string{"-v", "project", "--", "1000", "10"}},
		{args: []string{"--", "-5", "10"}, want: []string{"project", "--", "-5", "10"}},
		{args: []string{"-v", "project", "-5"}, want: []string{"-v", "project", "--", "-5"}},
		{args: []string{"project", "-exact", "1000"}, want: []string{"project", "-exact", "1000"}},
		{args: []string{"project", "-exact", "-5", "10"}, want: []string{"project", "-exact", "--", "-5", "10"}},
		{args: []string{"project", "-currency", "USD", "-.5"}, want: []string{"project", "-currency", "USD", "--", "-.5"}},
		{args: []string{"project", "-json=true", "-5"}, want: []string{"project", "-json=true", "--", "-5"}},
		// flags stop at the first argument, later negative numbers are arguments already.
		{args: []string{"project", "1000", "-10", "5", "yearly"}, want: []string{"project", "1000", "-10", "5", "yearly"}},
		{args: []string{"contribute", "1000"}, want: []string{"contribute", "1000"}},
		{args: []string{"schedule", "-raw", "-1"}, want: []string{"schedule", "-raw", "--", "-1"}},
		{args: []string{"topic", "precision"}, want: []string{"topic", "precision"}},
		{args: []string{"help"}, want: []string{"help"}},
		{args: []string{"-bogus", "1000"}, want: []string{"-bogus", "project", "--", "1000"}},
	}
	for _, tt := range tests {
		if got := ResolveArgs(top, tt.args); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ResolveArgs(%q) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStatus subcommands.ExitStatus
		wantOutput string
	}{
		{
			name:       "default command",
			args:       []string{"1000.00", "10", "5.00", "yearly"},
			wantStatus: subcommands.ExitSuccess,
			wantOutput: "Final amount: 1600.00\n",
		},
		{
			name:       "negative deposit",
			args:       []string{"-5", "10", "5", "yearly"},
			wantStatus: subcommands.ExitFailure,
			wantOutput: "couldn't parse initial deposit \"-5\": no leading integer\n",
		},
		{
			name:       "negative deposit after the command",
			args:       []string{"project", "-5", "10", "5", "yearly"},
			wantStatus: subcommands.ExitFailure,
			wantOutput: "couldn't parse initial deposit \"-5\": no leading integer\n",
		},
		{
			name:       "negative deposit after flags",
			args:       []string{"-v", "project", "-exact", "-5.00", "10", "5", "yearly"},
			wantStatus: subcommands.ExitFailure,
			wantOutput: "couldn't parse initial deposit \"-5.00\": no leading integer\n",
		},
		{
			name:       "negative length",
			args:       []string{"1000", "-10", "5", "yearly"},
			wantStatus: subcommands.ExitFailure,
			wantOutput: "couldn't parse length \"-10\": no leading integer\n",
		},
		{
			name:       "negative contribution",
			args:       []string{"contribute", "-1", "10", "5", "yearly", "100", "monthly"},
			wantStatus: subcommands.ExitFailure,
			wantOutput: "couldn't parse initial deposit \"-1\": no leading integer\n",
		},
		{
			name:       "no arguments",
			args:       nil,
			wantStatus: subcommands.ExitFailure,
			wantOutput: projectArguments,
		},
		{
			name:       "unknown top level flag",
			args:       []string{"-bogus", "1000", "10", "5", "yearly"},
			wantStatus: subcommands.ExitFailure,
			wantOutput: "flag provided but not defined: -bogus\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			oldStdout := stdout
			stdout = &out
			defer func() { stdout = oldStdout }()
			defer func() { verbose = false }()
			captureLog(t)

			status := Run(context.Background(), "compound", tt.args)
			if status != tt.wantStatus {
				t.Errorf("Expected %v, got %v", tt.wantStatus, status)
			}
			if got := out.String(); got != tt.wantOutput {
				t.Errorf("output mismatch.\nGot:\n%q\nWant:\n%q", got, tt.wantOutput)
			}
		})
	}
}

func TestTopicCmd(t *testing.T) {
	got, status := execute(t, &topicCmd{}, "-raw", "precision")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if !strings.HasPrefix(got, "# precision") {
		t.Errorf("topic precision output starts with %q", got[:min(len(got), 20)])
	}

	got, status = execute(t, &topicCmd{}, "-raw", "nope")
	if status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure, got %v", status)
	}
	if !strings.HasPrefix(got, "Error reading doc:") {
		t.Errorf("unexpected output for an unknown topic: %q", got)
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, name := range []string{"project", "contribute", "schedule", "topic"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("completion is missing the %q command", name)
		}
		if !isCommand(name) {
			t.Errorf("%q is not a registered command", name)
		}
	}
	if got := c.Sub["contribute"].Args.Predict(""); !reflect.DeepEqual(got, []string{"yearly", "monthly", "daily"}) {
		t.Errorf("contribute arguments predict %q", got)
	}
}
