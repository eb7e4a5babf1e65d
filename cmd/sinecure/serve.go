package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"honnef.co/go/sinecure"
	"honnef.co/go/sinecure/dataset"
	"honnef.co/go/sinecure/render"
)

// renderCacheTTL bounds how often a busy page can force a re-read of the
// CSV file.
const renderCacheTTL = 2 * time.Second

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<title>sinecure</title>
<meta http-equiv="refresh" content="2">
<style>body { margin: 0; min-height: 100vh; display: grid; place-items: center; background: #111; }</style>
</head>
<body><img src="/curve.svg" alt="interpolated curve"></body>
</html>
`

func newServeCommand() *cobra.Command {
	opts := NewServeOptions()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live plot of a CSV file over HTTP",
		Long: `Serve renders a CSV file as an SVG plot on every request, so the page
follows the file as it changes. Renders are cached briefly to keep busy
pages from hammering the file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return runServe(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func runServe(opts *ServeOptions) error {
	style, err := resolveStyle(opts.Theme, opts.StylePath)
	if err != nil {
		return err
	}
	srv := &plotServer{
		opts:    opts,
		style:   style,
		renders: cache.New(renderCacheTTL, 2*renderCacheTTL),
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/", srv.index)
	r.GET("/curve.svg", srv.curveSVG)

	klog.Infof("Serving %s on http://%s", opts.CSVPath, opts.Addr)
	return r.Run(opts.Addr)
}

// plotServer renders the configured CSV file on demand, caching renders
// for [renderCacheTTL].
type plotServer struct {
	opts    *ServeOptions
	style   render.Style
	renders *cache.Cache
}

func (s *plotServer) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

func (s *plotServer) curveSVG(c *gin.Context) {
	svg, err := s.renderCSV()
	if err != nil {
		klog.Errorf("Rendering %s: %v", s.opts.CSVPath, err)
		c.String(http.StatusInternalServerError, "rendering %s: %v", s.opts.CSVPath, err)
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}

func (s *plotServer) renderCSV() (string, error) {
	if svg, ok := s.renders.Get(s.opts.CSVPath); ok {
		return svg.(string), nil
	}

	pts, xName, yName, err := dataset.ReadCSVFile(s.opts.CSVPath, s.opts.XColumn, s.opts.YColumn)
	if err != nil {
		return "", err
	}
	if err := dataset.Validate(pts); err != nil {
		return "", err
	}
	interp := sinecure.Interpolator{SamplesPerSegment: s.opts.Samples}
	crv, err := interp.Interpolate(pts)
	if err != nil {
		return "", err
	}

	style := s.style
	if style.XLabel == "" {
		style.XLabel = xName
	}
	if style.YLabel == "" {
		style.YLabel = yName
	}
	svg, err := render.SVG(crv, pts, style)
	if err != nil {
		return "", err
	}
	s.renders.Set(s.opts.CSVPath, svg, cache.DefaultExpiration)
	return svg, nil
}
