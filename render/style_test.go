package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/sinecure/render"
)

// TestStyleDefaults pins the dimensions and polarity of the built-in
// styles.
func TestStyleDefaults(t *testing.T) {
	dark := render.DarkStyle()
	assert.Equal(t, 1000, dark.Width)
	assert.Equal(t, 600, dark.Height)
	assert.Equal(t, "black", dark.Background)
	assert.Equal(t, "Interpolated Curve", dark.CurveLabel)
	assert.Equal(t, "Original Points", dark.PointLabel)

	light := render.LightStyle()
	assert.Equal(t, "white", light.Background)
	assert.Equal(t, "black", light.TextColor)
	assert.Equal(t, dark.CurveColor, light.CurveColor)
}

// TestLoadStyle overrides only the keys present in the file, keeping the
// base for everything else.
func TestLoadStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	doc := "curveColor: cyan\npointLabel: Data Points\ngrid: true\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	style, err := render.LoadStyle(path, render.DarkStyle())
	require.NoError(t, err)
	assert.Equal(t, "cyan", style.CurveColor)
	assert.Equal(t, "Data Points", style.PointLabel)
	assert.True(t, style.Grid)

	base := render.DarkStyle()
	assert.Equal(t, base.Width, style.Width)
	assert.Equal(t, base.Title, style.Title)
	assert.Equal(t, base.PointColor, style.PointColor)
}

// TestLoadStyleMissingFile propagates the file error and hands back the
// base untouched.
func TestLoadStyleMissingFile(t *testing.T) {
	base := render.LightStyle()
	style, err := render.LoadStyle(filepath.Join(t.TempDir(), "absent.yaml"), base)
	assert.Error(t, err)
	assert.Equal(t, base, style)
}

// TestLoadStyleMalformed rejects YAML that does not parse.
func TestLoadStyleMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [not a number\n"), 0o644))

	_, err := render.LoadStyle(path, render.DarkStyle())
	assert.Error(t, err)
}
