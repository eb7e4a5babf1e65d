package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/sinecure"
	"honnef.co/go/sinecure/dataset"
)

// TestReadCSVDefaultColumns uses the first two columns when no names are
// given.
func TestReadCSVDefaultColumns(t *testing.T) {
	in := "Time (hours),Temperature (°C)\n0,5\n2,0\n4,10\n"
	pts, xName, yName, err := dataset.ReadCSV(strings.NewReader(in), "", "")
	require.NoError(t, err)
	assert.Equal(t, "Time (hours)", xName)
	assert.Equal(t, "Temperature (°C)", yName)
	assert.Equal(t, []sinecure.Point{sinecure.Pt(0, 5), sinecure.Pt(2, 0), sinecure.Pt(4, 10)}, pts)
}

// TestReadCSVNamedColumns selects columns by header name regardless of
// their position.
func TestReadCSVNamedColumns(t *testing.T) {
	in := "id,y,x\n1,5,0\n2,0,2\n"
	pts, xName, yName, err := dataset.ReadCSV(strings.NewReader(in), "x", "y")
	require.NoError(t, err)
	assert.Equal(t, "x", xName)
	assert.Equal(t, "y", yName)
	assert.Equal(t, []sinecure.Point{sinecure.Pt(0, 5), sinecure.Pt(2, 0)}, pts)
}

// TestReadCSVMissingColumn rejects a column name absent from the header.
func TestReadCSVMissingColumn(t *testing.T) {
	in := "x,y\n0,5\n"
	_, _, _, err := dataset.ReadCSV(strings.NewReader(in), "time", "")
	assert.ErrorIs(t, err, dataset.ErrMissingColumn)
}

// TestReadCSVNotEnoughColumns rejects a header with a single column.
func TestReadCSVNotEnoughColumns(t *testing.T) {
	in := "x\n0\n1\n"
	_, _, _, err := dataset.ReadCSV(strings.NewReader(in), "", "")
	assert.ErrorIs(t, err, dataset.ErrNotEnoughColumns)
}

// TestReadCSVBadCell reports the offending row and column for a cell that
// is not a number.
func TestReadCSVBadCell(t *testing.T) {
	in := "x,y\n0,5\n2,cold\n"
	_, _, _, err := dataset.ReadCSV(strings.NewReader(in), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	assert.Contains(t, err.Error(), `"y"`)
}

// TestReadCSVEmpty rejects input without a header row.
func TestReadCSVEmpty(t *testing.T) {
	_, _, _, err := dataset.ReadCSV(strings.NewReader(""), "", "")
	assert.Error(t, err)
}

// TestWriteCSVRoundTrip writes a point set and reads it back unchanged.
func TestWriteCSVRoundTrip(t *testing.T) {
	pts := []sinecure.Point{sinecure.Pt(0, 5), sinecure.Pt(2.5, -0.125), sinecure.Pt(1e6, 0.1)}

	var buf strings.Builder
	require.NoError(t, dataset.WriteCSV(&buf, pts, "hour", "temp"))
	assert.Equal(t, "hour,temp", strings.SplitN(buf.String(), "\n", 2)[0])

	got, xName, yName, err := dataset.ReadCSV(strings.NewReader(buf.String()), "", "")
	require.NoError(t, err)
	assert.Equal(t, "hour", xName)
	assert.Equal(t, "temp", yName)
	assert.Equal(t, pts, got)
}

// TestWriteCSVDefaultHeader falls back to "x" and "y" for empty column
// names.
func TestWriteCSVDefaultHeader(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, dataset.WriteCSV(&buf, dataset.SamplePoints(), "", ""))
	assert.Equal(t, "x,y", strings.SplitN(buf.String(), "\n", 2)[0])
}

// TestCSVFileRoundTrip writes a point set to disk and reads it back by
// path.
func TestCSVFileRoundTrip(t *testing.T) {
	path := t.TempDir() + "/points.csv"
	pts := dataset.SamplePoints()
	require.NoError(t, dataset.WriteCSVFile(path, pts, dataset.TimeColumn, dataset.TemperatureColumn))

	got, xName, yName, err := dataset.ReadCSVFile(path, "", dataset.TemperatureColumn)
	require.NoError(t, err)
	assert.Equal(t, dataset.TimeColumn, xName)
	assert.Equal(t, dataset.TemperatureColumn, yName)
	assert.Equal(t, pts, got)
}

// TestReadCSVFileMissing propagates the underlying file error.
func TestReadCSVFileMissing(t *testing.T) {
	_, _, _, err := dataset.ReadCSVFile(t.TempDir()+"/absent.csv", "", "")
	assert.Error(t, err)
}
