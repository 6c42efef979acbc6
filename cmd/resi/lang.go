package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) langCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lang [LOCALE]",
		Short: "Show or change the interface language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				if err := c.i18n.SetLocale(cmd.Context(), args[0]); err != nil {
					return c.explain(err)
				}
			}
			active := c.i18n.Active()
			for _, loc := range c.i18n.Locales() {
				mark := " "
				if loc == active {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s\n", mark, loc)
			}
			return nil
		},
	}
}
