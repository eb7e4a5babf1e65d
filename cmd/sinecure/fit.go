package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"honnef.co/go/sinecure"
	"honnef.co/go/sinecure/dataset"
	"honnef.co/go/sinecure/render"
)

const coordsPrompt = "Coordinates e.g. (1, 2), (3, 4): "

func newFitCommand() *cobra.Command {
	opts := NewFitOptions()
	cmd := &cobra.Command{
		Use:   "fit [coordinates]",
		Short: "Interpolate a point set and render it",
		Long: `Fit reads points from a CSV file, from coordinate text or from the
built-in sample set, interpolates them and writes the result as an SVG
plot or as CSV samples. Without any input source it prompts for
coordinates on standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return runFit(opts, args)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func runFit(opts *FitOptions, args []string) error {
	if opts.Watch {
		if err := fitCSV(opts); err != nil {
			klog.Errorf("Initial render failed: %v", err)
		}
		return watchFit(opts)
	}
	pts, xName, yName, err := loadPoints(opts, args)
	if err != nil {
		return err
	}
	return fitPoints(opts, pts, xName, yName)
}

// loadPoints picks the input source in priority order: CSV file,
// --coords, positional text, the demo set, and finally an interactive
// prompt.
func loadPoints(opts *FitOptions, args []string) ([]sinecure.Point, string, string, error) {
	switch {
	case opts.CSVPath != "":
		pts, xName, yName, err := dataset.ReadCSVFile(opts.CSVPath, opts.XColumn, opts.YColumn)
		if err != nil {
			return nil, "", "", err
		}
		klog.V(2).Infof("Read %d points from %s", len(pts), opts.CSVPath)
		return pts, xName, yName, nil
	case opts.Coords != "":
		pts, err := dataset.ParseCoords(opts.Coords)
		return pts, "", "", err
	case len(args) > 0:
		pts, err := dataset.ParseCoords(strings.Join(args, " "))
		return pts, "", "", err
	case opts.Demo:
		return dataset.SamplePoints(), "", "", nil
	default:
		return promptPoints()
	}
}

// promptPoints asks for coordinates on standard input.
func promptPoints() ([]sinecure.Point, string, string, error) {
	os.Stderr.WriteString(coordsPrompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return nil, "", "", err
	}
	pts, err := dataset.ParseCoords(line)
	return pts, "", "", err
}

// fitCSV re-reads the configured CSV file and renders it. Used by watch
// mode, which needs a repeatable render.
func fitCSV(opts *FitOptions) error {
	pts, xName, yName, err := dataset.ReadCSVFile(opts.CSVPath, opts.XColumn, opts.YColumn)
	if err != nil {
		return err
	}
	return fitPoints(opts, pts, xName, yName)
}

func fitPoints(opts *FitOptions, pts []sinecure.Point, xName, yName string) error {
	if err := dataset.Validate(pts); err != nil {
		return err
	}
	interp := sinecure.Interpolator{SamplesPerSegment: opts.Samples}
	c, err := interp.Interpolate(pts)
	if err != nil {
		return err
	}
	klog.V(2).Infof("Interpolated %d points into %d samples", len(pts), len(c))

	return writeOutput(opts.Output, func(w io.Writer) error {
		if opts.Format == FormatCSV {
			return dataset.WriteCSV(w, c, xName, yName)
		}
		style, err := resolveStyle(opts.Theme, opts.StylePath)
		if err != nil {
			return err
		}
		if style.XLabel == "" {
			style.XLabel = xName
		}
		if style.YLabel == "" {
			style.YLabel = yName
		}
		return render.WriteSVG(w, c, pts, style)
	})
}

// writeOutput writes to the file at path, or to standard output for an
// empty path or "-".
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// watchFit re-renders the CSV file on every change until interrupted. The
// watch is on the file's directory, so the file may be replaced rather
// than rewritten in place.
func watchFit(opts *FitOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target, err := filepath.Abs(opts.CSVPath)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}
	klog.Infof("Watching %s, rendering to %s", opts.CSVPath, opts.Output)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	for {
		select {
		case <-ctx.Done():
			klog.Info("Watch interrupted")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if evPath, err := filepath.Abs(ev.Name); err != nil || evPath != target {
				continue
			}
			if err := fitCSV(opts); err != nil {
				klog.Errorf("Re-render failed: %v", err)
				continue
			}
			klog.Infof("Rendered %s", opts.Output)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			klog.Errorf("Watch error: %v", err)
		}
	}
}
