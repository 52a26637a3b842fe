//go:build !tinygo

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"unicorn/app"
	"unicorn/core/effect"
	"unicorn/core/menu"

	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the menu tree and which options resolve to an effect",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printMenu(cmd.OutOrStdout(), app.Menu(), app.Effects())
	},
}

var switchNames = [menu.Width]string{"A", "B", "C", "D"}

func printMenu(out io.Writer, tree menu.Tree, reg *effect.Registry) error {
	if err := tree.Validate(); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, cat := range tree {
		fmt.Fprintf(tw, "%s %s\n", switchNames[i], cat.Label)
		for j, opt := range cat.Children {
			status := "ok"
			switch {
			case !opt.Bound():
				status = "unbound"
			case !reg.Has(opt.Effect):
				status = "missing"
			}
			fmt.Fprintf(tw, "  %s %s\t%s\t%s\n", switchNames[j], opt.Label, opt.Effect, status)
		}
	}
	return tw.Flush()
}
