package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/jumppad-labs/hdltarget"
	"github.com/jumppad-labs/hdltarget/logger"
	"github.com/jumppad-labs/hdltarget/netlist"
	"github.com/jumppad-labs/hdltarget/plugins"
	"github.com/jumppad-labs/hdltarget/stub"
	"github.com/spf13/cobra"
)

type designOptions struct {
	vars    map[string]string
	cache   string
	remote  bool
	refresh bool
}

func (d *designOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringToStringVar(&d.vars, "var", nil, "Set a design variable, i.e. --var width=8")
	cmd.Flags().StringVar(&d.cache, "cache", "", "Folder for designs fetched with --remote, defaults to $HOME/.hdltarget/cache")
	cmd.Flags().BoolVar(&d.remote, "remote", false, "Treat the design argument as a go-getter source")
	cmd.Flags().BoolVar(&d.refresh, "refresh", false, "Download a --remote design again even when it is cached")
}

func (d *designOptions) load(ctx context.Context, l logger.Logger, src string) (*netlist.Design, error) {
	p := hdltarget.NewParser(&hdltarget.ParserOptions{
		Variables:   d.vars,
		DesignCache: d.cache,
		Logger:      l,
	})

	if d.remote {
		return p.ParseRemote(ctx, src, d.refresh)
	}

	return p.ParseFile(src)
}

type dumpOptions struct {
	designOptions

	output string
	flags  map[string]string
	plugin string
}

func newDumpCmd(ro *rootOptions) *cobra.Command {
	o := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump <design>",
		Short: "Write the design with the stub target or an external target plugin",
		Long: `Parses the design and calls the target module once per element.

Without --plugin the stub target compiled into hdldump is used, it writes one
line per element to the file named by the "-o" option of the design.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := ro.logger(cmd)
			if err != nil {
				return err
			}

			des, err := o.load(cmd.Context(), l, args[0])
			if err != nil {
				return err
			}

			for k, v := range o.flags {
				des.SetFlag(k, v)
			}

			if o.output != "" {
				des.SetFlag(stub.OutputFlag, o.output)
			}

			host, err := o.host(l)
			if err != nil {
				return err
			}
			defer host.Stop()

			return host.Run(des)
		},
	}

	o.addFlags(cmd)
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output file, overrides the -o option of the design")
	cmd.Flags().StringToStringVar(&o.flags, "flag", nil, "Set a design option passed to the target, i.e. --flag debug=1")
	cmd.Flags().StringVar(&o.plugin, "plugin", "", "Name or path of an external target plugin, names are resolved with the targets command")

	return cmd
}

func (o *dumpOptions) host(l logger.Logger) (plugins.PluginHost, error) {
	if o.plugin == "" {
		return plugins.NewDirectPluginHost(l, stub.New(l)), nil
	}

	path := o.plugin
	if !strings.ContainsRune(path, filepath.Separator) {
		ti, err := plugins.NewTargetDiscovery(plugins.DefaultDirectories(), "", l).Find(path)
		if err != nil {
			return nil, err
		}

		path = ti.Path
	}

	return plugins.NewExternalPluginHost(l, path)
}
