package main

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pspoerri/jtskconv/internal/coord"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestToJTSK_JSON(t *testing.T) {
	out, err := run(t, "to-jtsk", "--format", "json", "50.087", "14.421")
	require.NoError(t, err)

	var r result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	require.Equal(t, "EPSG:5513", r.CRS)
	require.InDelta(t, 1043061.758, r.X, 1e-3)
	require.InDelta(t, 742834.765, r.Y, 1e-3)
	require.Equal(t, 50.087, r.Lat)
	require.Equal(t, 14.421, r.Lon)
}

func TestToJTSK_EastNorthYAML(t *testing.T) {
	out, err := run(t, "to-jtsk", "--crs", "5514", "--format", "yaml", "50.087", "14.421")
	require.NoError(t, err)

	var r result
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.Equal(t, "EPSG:5514", r.CRS)
	require.InDelta(t, -742834.765, r.X, 1e-3)
	require.InDelta(t, -1043061.758, r.Y, 1e-3)
}

func TestToJTSK_OutsideRegion(t *testing.T) {
	_, err := run(t, "to-jtsk", "39.9", "15")
	require.ErrorIs(t, err, coord.ErrOutsideRegion)
}

func TestToWGS84_Text(t *testing.T) {
	out, err := run(t, "to-wgs84", "1043061.7580112994", "742834.765432922")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "EPSG:5513  x=1043061.758 y=742834.765\n"), out)
	require.Contains(t, out, "lat=50.0870")
	require.Contains(t, out, "lon=14.4209")
}

func TestToWGS84_EastNorthGeoJSON(t *testing.T) {
	out, err := run(t, "to-wgs84", "--crs", "5514", "--format", "geojson", "--", "-742834.765432922", "-1043061.7580112994")
	require.NoError(t, err)

	f, err := geojson.UnmarshalFeature([]byte(out))
	require.NoError(t, err)
	pt, ok := f.Geometry.(orb.Point)
	require.True(t, ok)
	require.InDelta(t, 14.421, pt.Lon(), 1e-4)
	require.InDelta(t, 50.087, pt.Lat(), 1e-4)
	require.Equal(t, "EPSG:5514", f.Properties.MustString("crs"))
	require.InDelta(t, -742834.765, f.Properties.MustFloat64("x"), 1e-3)
}

func TestToWGS84_ZeroInput(t *testing.T) {
	_, err := run(t, "to-wgs84", "0", "100")
	require.ErrorIs(t, err, coord.ErrNoInput)
}

func TestToWGS84_Verbose(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	_, err := run(t, "to-wgs84", "--verbose", "1160744.8", "598248.8")
	require.NoError(t, err)
	require.Equal(t, 22, strings.Count(logs.String(), "step "))
	require.Contains(t, logs.String(), "Stopped after 22 rounds (88 forward conversions)")
}

func TestBadArguments(t *testing.T) {
	_, err := run(t, "to-jtsk", "north", "14")
	require.ErrorContains(t, err, "parsing lat")

	_, err = run(t, "to-jtsk", "--format", "csv", "50", "14")
	require.ErrorContains(t, err, "unknown --format")

	_, err = run(t, "to-wgs84", "--crs", "2056", "1", "1")
	require.ErrorContains(t, err, "unsupported --crs")

	_, err = run(t, "to-jtsk", "50")
	require.Error(t, err)
}
