package main

import (
	"flag"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

// NewSinecureCommand assembles the root command, its subcommands and the
// shared logging flags.
func NewSinecureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sinecure",
		Short: "Interpolate point sets with half-sine segments",
		Long: `sinecure fits a smooth curve through a set of points by joining every
adjacent pair with a half period of a sine wave, solving each segment's
phase with Newton-Raphson. Points come from coordinate text, CSV files or
a synthetic day-cycle generator; output is an SVG plot or the sampled
curve as CSV.`,
		SilenceUsage: true,
	}
	addKlogFlags(cmd.PersistentFlags())
	cmd.AddCommand(newFitCommand(), newGenCommand(), newServeCommand())
	return cmd
}

// addKlogFlags registers klog's flags on fs, with dashes instead of
// underscores in the flag names.
func addKlogFlags(fs *pflag.FlagSet) {
	local := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(local)
	local.VisitAll(func(fl *flag.Flag) {
		fl.Name = strings.ReplaceAll(fl.Name, "_", "-")
		fs.AddGoFlag(fl)
	})
}
