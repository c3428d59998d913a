package main

import (
	"context"
	"fmt"

	"github.com/maruel/subcommands"

	"github.com/katalvlaran/junctions/cluster"
)

func cmdComplete() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "complete [-input file]",
		ShortDesc: "connect pairs nearest-first until one group remains",
		LongDesc: `Connects pairs in distance order, skipping pairs already in one group,
until every point shares a single group. Prints the product of the X
coordinates of the pair that completed it. Fails if the input cannot be
connected.`,
		CommandRun: func() subcommands.CommandRun {
			c := &completeRun{}
			c.common.register(&c.Flags)
			return c
		},
	}
}

type completeRun struct {
	subcommands.CommandRunBase

	common commonFlags
}

func (c *completeRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 0 {
		fmt.Fprintf(a.GetErr(), "%s: unexpected arguments %q\n", a.GetName(), args)
		return 1
	}

	return c.common.run(a, func(ctx context.Context) error {
		pts, ordered, err := c.common.load()
		if err != nil {
			return err
		}
		res, err := cluster.Complete(len(pts), ordered,
			cluster.WithContext(ctx),
			cluster.WithOnConnect(logPair(pts)),
		)
		if err != nil {
			return err
		}
		x, err := res.XProduct(pts)
		if err != nil {
			return err
		}
		log.Infof("%d merges over %d pairs, final %v-%v",
			res.Merges, res.Examined, pts[res.Final.A], pts[res.Final.B])
		fmt.Fprintln(a.GetOut(), x)

		return nil
	})
}
