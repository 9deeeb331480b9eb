package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/jumppad-labs/hdltarget/plugins"
	"github.com/spf13/cobra"
)

func newTargetsCmd(ro *rootOptions) *cobra.Command {
	var dirs []string

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List the external target plugins that can be passed to dump --plugin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := ro.logger(cmd)
			if err != nil {
				return err
			}

			if len(dirs) == 0 {
				dirs = plugins.DefaultDirectories()
			}

			targets, err := plugins.NewTargetDiscovery(dirs, "", l).Discover()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tPATH")
			for _, t := range targets {
				fmt.Fprintf(w, "%s\t%s\n", t.Name, t.Path)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringSliceVar(&dirs, "dir", nil, "Folders to search, defaults to HDLTARGET_PLUGIN_PATH, $HOME/.hdltarget/plugins and the folder of hdldump")

	return cmd
}
