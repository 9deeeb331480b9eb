package main

import (
	"fmt"

	"github.com/jumppad-labs/hdltarget/logger"
	"github.com/spf13/cobra"
)

var version = "dev"

type rootOptions struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "hdldump",
		Short:         "Drive a target module over an elaborated design",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "Log level, one of debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&o.logFormat, "log-format", "text", "Log format, one of text, json")

	cmd.AddCommand(newDumpCmd(o))
	cmd.AddCommand(newInspectCmd(o))
	cmd.AddCommand(newTargetsCmd(o))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger returns a logger writing to the error stream of cmd in the format
// selected with --log-format
func (o *rootOptions) logger(cmd *cobra.Command) (logger.Logger, error) {
	switch o.logFormat {
	case "json":
		return logger.NewJSONLogger(cmd.ErrOrStderr(), o.logLevel)
	case "text", "":
	default:
		return nil, fmt.Errorf("unknown log format %q, expected text or json", o.logFormat)
	}

	lvl, err := logger.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}

	return logger.NewConsoleLogger(cmd.ErrOrStderr(), lvl), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of hdldump",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version)
		},
	}
}
