package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-peaks/internal/config"
	"github.com/cwbudde/algo-peaks/internal/seriesio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func decodeRows(t *testing.T, out string) []seriesio.Row {
	t.Helper()
	var rows []seriesio.Row
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	return rows
}

func TestDetectCSV(t *testing.T) {
	input := writeFile(t, "series.dat", "0 3 1\n5 2 4 0\n")

	out, err := execute(t, "detect", "--input", input, "--min-height", "4", "--format", "csv", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "position,left,right,x,height"))
	assert.True(t, strings.HasPrefix(lines[1], "3,3,3,3,5,"))
	assert.True(t, strings.HasPrefix(lines[2], "5,5,5,5,4,"))
}

func TestDetectXY(t *testing.T) {
	input := writeFile(t, "xy.dat", "0.0 0\n0.5 2\n1.0 0\n1.2 1\n1.4 0\n3.0 3\n3.5 0\n")

	out, err := execute(t, "detect", "--input", input, "--xy", "--min-distance", "1", "--format", "json")
	require.NoError(t, err)

	rows := decodeRows(t, out)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Position)
	assert.InDelta(t, 0.5, rows[0].X, 1e-12)
	assert.Equal(t, 5, rows[1].Position)
	assert.InDelta(t, 3.0, rows[1].X, 1e-12)
}

func TestDetectConfigWithFlagOverride(t *testing.T) {
	input := writeFile(t, "series.dat", "0 3 1 5 2 4 0")
	cfg := writeFile(t, "bounds.yaml", "height:\n  min: 4\n")

	out, err := execute(t, "detect", "--input", input, "--config", cfg, "--format", "json")
	require.NoError(t, err)
	assert.Len(t, decodeRows(t, out), 2)

	out, err = execute(t, "detect", "--input", input, "--config", cfg, "--min-height", "5", "--format", "json")
	require.NoError(t, err)
	rows := decodeRows(t, out)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Position)
}

func TestDetectNoPeaksJSON(t *testing.T) {
	input := writeFile(t, "ramp.dat", "1 2 3 4 5")

	out, err := execute(t, "detect", "--input", input, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestDetectErrors(t *testing.T) {
	input := writeFile(t, "series.dat", "0 1 0")

	_, err := execute(t, "detect", "--input", input, "--format", "xml")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = execute(t, "detect", "--input", input, "--min-prominence=-1")
	assert.ErrorIs(t, err, config.ErrInvalidBound)

	nanX := writeFile(t, "nan.dat", "0 0\nnan 5\n2 0\n100 1\n104 0\n")
	_, err = execute(t, "detect", "--input", nanX, "--xy", "--min-distance", "1")
	assert.ErrorIs(t, err, seriesio.ErrNonFiniteX)

	_, err = execute(t, "detect")
	assert.Error(t, err)

	_, err = execute(t, "detect", "--input", filepath.Join(t.TempDir(), "missing.dat"))
	assert.Error(t, err)
}

func TestDemoECG(t *testing.T) {
	out, err := execute(t, "demo", "--noise", "0", "--format", "json")
	require.NoError(t, err)

	rows := decodeRows(t, out)
	require.Len(t, rows, 12)
	for i, r := range rows {
		want := (float64(i) + 0.5) * 60 / 72
		assert.InDelta(t, want, r.X, 1.0/360, "beat %d", i)
		require.NotNil(t, r.Prominence)
		assert.Greater(t, *r.Prominence, 0.9)
	}
}

func TestDemoECGWithNoise(t *testing.T) {
	out, err := execute(t, "demo", "--format", "json", "--noise", "0.02", "--seed", "7")
	require.NoError(t, err)
	assert.Len(t, decodeRows(t, out), 12)
}

func TestDemoSpectrum(t *testing.T) {
	out, err := execute(t, "demo", "--spectrum", "--noise", "0", "--format", "json")
	require.NoError(t, err)

	rows := decodeRows(t, out)
	require.Len(t, rows, 2)
	assert.InDelta(t, 50, rows[0].X, 0.1)
	assert.InDelta(t, 120, rows[1].X, 0.1)
	assert.Greater(t, *rows[0].Height, *rows[1].Height)
}

func TestDemoSpectrumWindows(t *testing.T) {
	for _, w := range []string{"hamming", "blackman", "blackman-harris"} {
		out, err := execute(t, "demo", "--spectrum", "--noise", "0", "--window", w, "--format", "json")
		require.NoError(t, err, w)

		rows := decodeRows(t, out)
		require.Len(t, rows, 2, w)
		assert.InDelta(t, 50, rows[0].X, 0.1, w)
		assert.InDelta(t, 120, rows[1].X, 0.1, w)
	}

	_, err := execute(t, "demo", "--spectrum", "--window", "kaiser")
	assert.ErrorContains(t, err, "unknown window")
}

func TestDemoPulses(t *testing.T) {
	out, err := execute(t, "demo", "--pulses", "--noise", "0", "--format", "json")
	require.NoError(t, err)

	rows := decodeRows(t, out)
	require.Len(t, rows, 20)
	for i, r := range rows {
		assert.InDelta(t, 0.25+0.5*float64(i), r.X, 1.0/360, "pulse %d", i)
	}

	_, err = execute(t, "demo", "--pulses", "--spectrum")
	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestDemoSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounds.yaml")

	_, err := execute(t, "demo", "--noise", "0", "--save-config", path, "--format", "csv")
	require.NoError(t, err)

	saved, err := config.Load(path)
	require.NoError(t, err)
	require.NotNil(t, saved.Prominence.Min)
	assert.InDelta(t, 0.5, *saved.Prominence.Min, 1e-12)
	assert.Nil(t, saved.Height.Min)

	input := writeFile(t, "series.dat", "0 3 1 5 2 4 0")
	out, err := execute(t, "detect", "--input", input, "--config", path, "--format", "json")
	require.NoError(t, err)
	assert.Len(t, decodeRows(t, out), 3)
}

func TestDemoPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecg.png")

	_, err := execute(t, "demo", "--noise", "0", "--plot", path, "--format", "csv")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "findpeaks dev\n", out)
}
