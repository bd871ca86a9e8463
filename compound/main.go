package main

import (
	"context"
	"os"
	"path"

	"github.com/etnz/compound/cmd"
	"github.com/posener/complete/v2"
)

func main() {
	// returns immediately unless the shell asks for completions.
	complete.Complete("compound", cmd.Completion())

	// a bare "<deposit> <years> <rate> <frequency>" runs the default command.
	os.Exit(int(cmd.Run(context.Background(), path.Base(os.Args[0]), os.Args[1:])))
}
