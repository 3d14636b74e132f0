package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pspoerri/jtskconv/internal/coord"
	"gopkg.in/yaml.v3"
)

// result is one converted position. X and Y follow the axis order of CRS:
// southing/westing for EPSG:5513, easting/northing for EPSG:5514.
type result struct {
	CRS string  `json:"crs" yaml:"crs"`
	X   float64 `json:"x" yaml:"x"`
	Y   float64 `json:"y" yaml:"y"`
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

func newResult(crs int, lat, lon float64, p coord.Planar) result {
	x, y := p.X, p.Y
	if crs == 5514 {
		x, y = p.EastNorth()
	}
	return result{
		CRS: fmt.Sprintf("EPSG:%d", crs),
		X:   x,
		Y:   y,
		Lat: lat,
		Lon: lon,
	}
}

var writers = map[string]func(io.Writer, result) error{
	"text":    writeText,
	"json":    writeJSON,
	"yaml":    writeYAML,
	"geojson": writeGeoJSON,
}

func writeResult(w io.Writer, opts options, r result) error {
	return writers[opts.format](w, r)
}

func writeText(w io.Writer, r result) error {
	_, err := fmt.Fprintf(w, "%-10s x=%.3f y=%.3f\n%-10s lat=%.7f lon=%.7f\n",
		r.CRS, r.X, r.Y, "EPSG:4326", r.Lat, r.Lon)
	return err
}

func writeJSON(w io.Writer, r result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeYAML(w io.Writer, r result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// writeGeoJSON emits a Feature at the WGS-84 position with the grid
// coordinate kept in the properties.
func writeGeoJSON(w io.Writer, r result) error {
	f := geojson.NewFeature(orb.Point{r.Lon, r.Lat})
	f.Properties["crs"] = r.CRS
	f.Properties["x"] = r.X
	f.Properties["y"] = r.Y

	b, err := f.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding geojson: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}
