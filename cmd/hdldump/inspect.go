package main

import (
	"github.com/jumppad-labs/hdltarget"
	"github.com/spf13/cobra"
)

type inspectOptions struct {
	designOptions

	format  string
	noColor bool
}

func newInspectCmd(ro *rootOptions) *cobra.Command {
	o := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <design>",
		Short: "Print the parsed design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := ro.logger(cmd)
			if err != nil {
				return err
			}

			des, err := o.load(cmd.Context(), l, args[0])
			if err != nil {
				return err
			}

			p := hdltarget.NewDesignPrinter(
				hdltarget.WithWriter(cmd.OutOrStdout()),
				hdltarget.WithColor(!o.noColor),
			)

			return p.Print(des, hdltarget.PrintFormat(o.format))
		},
	}

	o.addFlags(cmd)
	cmd.Flags().StringVar(&o.format, "format", string(hdltarget.FormatTree), "Output format, one of tree, table, json, yaml, go")
	cmd.Flags().BoolVar(&o.noColor, "no-color", false, "Disable colored output")

	return cmd
}
