package main

import (
	"io"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"honnef.co/go/sinecure"
)

func newGenCommand() *cobra.Command {
	opts := NewGenOptions()
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic temperature series as CSV",
		Long: `Gen writes a synthetic day-cycle temperature series, a sine with its
minimum at the start of the period plus Gaussian noise. The points can be
spaced evenly, at random or weighted towards the waking hours.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return runGen(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func runGen(opts *GenOptions) error {
	g := opts.Generator()
	var pts []sinecure.Point
	err := writeOutput(opts.Output, func(w io.Writer) error {
		var err error
		pts, err = g.WriteCSV(w)
		return err
	})
	if err != nil {
		return err
	}
	dest := opts.Output
	if dest == "" || dest == "-" {
		dest = "stdout"
	}
	klog.Infof("Wrote %d points across %g hours to %s", len(pts), g.PeriodHours, dest)
	return nil
}
