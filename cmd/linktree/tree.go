package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/cbehopkins/linktree/yggdrasil/tree"
)

var cmdTree = &cli.Command{
	Name:  "tree",
	Usage: "load a tree and search it depth first and breadth first",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "JSON tree file ({\"payload\": ..., \"children\": [...]}); defaults to a built-in sample",
			EnvVars: []string{"LINKTREE_TREE_FILE"},
		},
		&cli.StringSliceFlag{
			Name:  "dfs",
			Usage: "search for this payload depth first",
		},
		&cli.StringSliceFlag{
			Name:  "bfs",
			Usage: "search for this payload breadth first",
		},
		&cli.BoolFlag{
			Name:  "render",
			Usage: "draw the tree shape",
		},
		&cli.BoolFlag{
			Name:  "print",
			Usage: "print payloads level by level",
		},
	},
	Action: runTree,
}

// jsonNode is the JSON form of a tree node.
type jsonNode struct {
	Payload  string     `json:"payload"`
	Children []jsonNode `json:"children,omitempty"`
}

// sampleTree has two "B" nodes at different depths.
var sampleTree = jsonNode{
	Payload: "A",
	Children: []jsonNode{
		{Payload: "C", Children: []jsonNode{
			{Payload: "D", Children: []jsonNode{{Payload: "B"}}},
		}},
		{Payload: "E", Children: []jsonNode{{Payload: "B"}}},
	},
}

func buildNode(doc jsonNode) (*tree.Node[string], error) {
	node := tree.NewNode(doc.Payload)
	children := make([]*tree.Node[string], 0, len(doc.Children))
	for _, cs := range doc.Children {
		child, err := buildNode(cs)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if err := node.AddChild(children...); err != nil {
		return nil, err
	}
	return node, nil
}

func loadTree(path string) (*tree.Tree[string], error) {
	doc := sampleTree
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		doc = jsonNode{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing tree file %s: %w", path, err)
		}
	}
	root, err := buildNode(doc)
	if err != nil {
		return nil, err
	}
	return tree.New(root)
}

// describe reports where a node sits: its depth and the payloads from the root down.
func describe(node *tree.Node[string]) string {
	var ancestors []*tree.Node[string]
	for n := node; n != nil; n = n.Parent() {
		ancestors = append(ancestors, n)
	}
	path := lo.Map(ancestors, func(n *tree.Node[string], _ int) string {
		return n.Payload()
	})
	return fmt.Sprintf("depth %d path %s", len(ancestors)-1, strings.Join(lo.Reverse(path), " > "))
}

func runTree(cctx *cli.Context) error {
	out := cctx.App.Writer

	t, err := loadTree(cctx.String("file"))
	if err != nil {
		return err
	}
	slog.Info("loaded tree", "root", t.Root(), "nodes", t.Len())

	if cctx.Bool("render") {
		if err := t.Render(out); err != nil {
			return err
		}
	}
	if cctx.Bool("print") {
		if err := t.Print(out); err != nil {
			return err
		}
	}

	searches := []struct {
		flag string
		find func(string) (*tree.Node[string], bool)
	}{
		{"dfs", t.DepthFirstSearch},
		{"bfs", t.BreadthFirstSearch},
	}
	for _, s := range searches {
		for _, payload := range cctx.StringSlice(s.flag) {
			node, ok := s.find(payload)
			if !ok {
				fmt.Fprintf(out, "%s %s: not found\n", s.flag, payload)
				continue
			}
			fmt.Fprintf(out, "%s %s: %s\n", s.flag, payload, describe(node))
		}
	}
	return nil
}
