package main

import (
	"context"
	"fmt"

	"github.com/maruel/subcommands"

	"github.com/katalvlaran/junctions/cluster"
)

func cmdBudget() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "budget [-input file] [-budget K] [-top M]",
		ShortDesc: "connect the K closest pairs and multiply the M largest group sizes",
		LongDesc: `Connects the K closest pairs in distance order, including pairs whose
endpoints are already in one group, then prints the product of the M largest
group sizes. Points that no pair touched count as groups of one.`,
		CommandRun: func() subcommands.CommandRun {
			c := &budgetRun{}
			c.common.register(&c.Flags)
			c.Flags.IntVar(&c.budget, "budget", cluster.DefaultBudget, "Number of pairs to connect.")
			c.Flags.IntVar(&c.top, "top", cluster.DefaultTop, "Number of largest groups to multiply.")
			return c
		},
	}
}

type budgetRun struct {
	subcommands.CommandRunBase

	common commonFlags
	budget int
	top    int
}

func (c *budgetRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 0 {
		fmt.Fprintf(a.GetErr(), "%s: unexpected arguments %q\n", a.GetName(), args)
		return 1
	}

	return c.common.run(a, func(ctx context.Context) error {
		pts, ordered, err := c.common.load()
		if err != nil {
			return err
		}
		res, err := cluster.FixedBudget(len(pts), ordered,
			cluster.WithContext(ctx),
			cluster.WithBudget(c.budget),
			cluster.WithTop(c.top),
			cluster.WithOnConnect(logPair(pts)),
		)
		if err != nil {
			return err
		}
		log.Infof("applied %d pairs, %d groups remain, largest %v", res.Applied, res.Components, res.Sizes)
		fmt.Fprintln(a.GetOut(), res.Product)

		return nil
	})
}
