// Command junctions runs the spatial-connectivity engine over a file of
// "x,y,z" points.
//
//	junctions budget   [-input f] [-budget 1000] [-top 3]
//	junctions complete [-input f]
//
// Each subcommand prints one unsigned integer on stdout and logs to stderr.
package main

import (
	"io"
	"os"

	"github.com/maruel/subcommands"
)

// application carries the output streams so tests can capture them.
type application struct {
	subcommands.DefaultApplication

	out, err io.Writer
}

func (a *application) GetOut() io.Writer { return a.out }
func (a *application) GetErr() io.Writer { return a.err }

func newApplication(out, errOut io.Writer) *application {
	return &application{
		DefaultApplication: subcommands.DefaultApplication{
			Name:  "junctions",
			Title: "Connects 3-D junction boxes nearest-first and reports group sizes.",
			Commands: []*subcommands.Command{
				cmdBudget(),
				cmdComplete(),

				{}, // a separator
				subcommands.CmdHelp,
			},
		},
		out: out,
		err: errOut,
	}
}

func main() {
	os.Exit(subcommands.Run(newApplication(os.Stdout, os.Stderr), os.Args[1:]))
}
