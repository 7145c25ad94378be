package gexiv2

import (
	"fmt"
	"math"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/backend"
)

// GPSInfo is a position in decimal degrees, with altitude in metres above sea
// level.
type GPSInfo struct {
	Longitude float64
	Latitude  float64
	Altitude  float64
}

func (g GPSInfo) String() string {
	return fmt.Sprintf("lat %.6f, lon %.6f, alt %.1fm", g.Latitude, g.Longitude, g.Altitude)
}

// GPSInfo returns the recorded position. ok is false when the image has no
// complete GPS position.
func (m *Metadata) GPSInfo() (g GPSInfo, ok bool, err error) {
	err = m.do("gps-info", "", func(d backend.Driver, h backend.Handle) (err error) {
		g.Longitude, g.Latitude, g.Altitude, ok, err = d.GPSInfo(h)
		return err
	})
	return g, ok, err
}

// SetGPSInfo replaces any recorded position with g.
func (m *Metadata) SetGPSInfo(g GPSInfo) error {
	return m.do("set-gps-info", "", func(d backend.Driver, h backend.Handle) error {
		if math.IsNaN(g.Latitude) || math.IsNaN(g.Longitude) || math.IsNaN(g.Altitude) ||
			g.Latitude < -90 || g.Latitude > 90 || g.Longitude < -180 || g.Longitude > 180 {
			return backend.Failed(backend.StatusInvalidInput, "position %v out of range", g)
		}
		return d.SetGPSInfo(h, g.Longitude, g.Latitude, g.Altitude)
	})
}

// DeleteGPSInfo removes every GPS tag.
func (m *Metadata) DeleteGPSInfo() error {
	return m.do("delete-gps-info", "", func(d backend.Driver, h backend.Handle) error {
		return d.DeleteGPSInfo(h)
	})
}
