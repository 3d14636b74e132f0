package coord

// Projection defines the interface for converting between a source CRS and WGS84.
type Projection interface {
	// ToWGS84 converts source CRS coordinates to WGS84 longitude/latitude (degrees).
	ToWGS84(x, y float64) (lon, lat float64)

	// FromWGS84 converts WGS84 longitude/latitude (degrees) to source CRS coordinates.
	FromWGS84(lon, lat float64) (x, y float64)

	// EPSG returns the EPSG code for this projection.
	EPSG() int
}

// ForEPSG returns a Projection for the given EPSG code.
// Returns nil if the EPSG code is not supported.
func ForEPSG(epsg int) Projection {
	switch epsg {
	case 4326:
		return &WGS84Identity{}
	case 5513:
		return &KrovakJTSK{}
	case 5514:
		return &KrovakEastNorth{}
	default:
		return nil
	}
}

// WGS84Identity is a no-op projection for data already in EPSG:4326.
type WGS84Identity struct{}

func (w *WGS84Identity) ToWGS84(x, y float64) (lon, lat float64)   { return x, y }
func (w *WGS84Identity) FromWGS84(lon, lat float64) (x, y float64) { return lon, lat }
func (w *WGS84Identity) EPSG() int                                 { return 4326 }

// KrovakJTSK is S-JTSK / Krovak (EPSG:5513) with the classic axes: x is the
// southing and y the westing, both positive over the covered region.
//
// Both directions return (0, 0) when no conversion is available: FromWGS84
// outside Region, ToWGS84 when either input is zero.
type KrovakJTSK struct{}

func (k *KrovakJTSK) EPSG() int { return 5513 }

func (k *KrovakJTSK) FromWGS84(lon, lat float64) (x, y float64) {
	p := WGS84ToJTSK(lat, lon)
	return p.X, p.Y
}

func (k *KrovakJTSK) ToWGS84(x, y float64) (lon, lat float64) {
	g := JTSKToWGS84(x, y)
	return g.Lon, g.Lat
}

// KrovakEastNorth is S-JTSK / Krovak East North (EPSG:5514), the GIS
// friendly variant with negated and swapped axes.
type KrovakEastNorth struct{}

func (k *KrovakEastNorth) EPSG() int { return 5514 }

func (k *KrovakEastNorth) FromWGS84(lon, lat float64) (easting, northing float64) {
	p, ok := ForwardJTSK(lat, lon)
	if !ok {
		return 0, 0
	}
	return p.EastNorth()
}

func (k *KrovakEastNorth) ToWGS84(easting, northing float64) (lon, lat float64) {
	p := PlanarFromEastNorth(easting, northing)
	g := JTSKToWGS84(p.X, p.Y)
	return g.Lon, g.Lat
}
