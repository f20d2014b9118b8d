package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/cbehopkins/linktree"
	"github.com/cbehopkins/linktree/chain"
)

var cmdList = &cli.Command{
	Name:      "list",
	Usage:     "build a linked list from the arguments and query it",
	ArgsUsage: `<item>...`,
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:  "remove",
			Usage: "remove the item at this index (applied in order, before queries)",
		},
		&cli.StringSliceFlag{
			Name:  "find",
			Usage: "report whether the list holds this item",
		},
		&cli.IntSliceFlag{
			Name:  "at",
			Usage: "report the item at this index",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "fail on an out of range --remove instead of skipping it",
		},
	},
	Action: runList,
}

func runList(cctx *cli.Context) error {
	out := cctx.App.Writer

	c := chain.New[string]()
	for _, item := range cctx.Args().Slice() {
		c.Append(item)
		slog.Debug("appended", "item", item, "len", c.Len())
	}

	for _, idx := range cctx.IntSlice("remove") {
		err := c.RemoveAt(idx)
		if errors.Is(err, linktree.ErrIndexOutOfRange) && !cctx.Bool("strict") {
			slog.Warn("skipping removal", "index", idx, "err", err)
			continue
		}
		if err != nil {
			return err
		}
		slog.Info("removed", "index", idx, "len", c.Len())
	}

	if err := c.Print(out); err != nil {
		return err
	}

	for _, item := range cctx.StringSlice("find") {
		fmt.Fprintf(out, "find %s: %t\n", item, c.Contains(item))
	}
	for _, idx := range cctx.IntSlice("at") {
		link := c.LinkAt(idx)
		if link == nil {
			fmt.Fprintf(out, "at %d: none\n", idx)
			continue
		}
		fmt.Fprintf(out, "at %d: %s\n", idx, link.Payload())
	}
	return nil
}
