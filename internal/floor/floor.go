// Package floor models the cargo deck as a 2-D plan: X inches aft of
// the RDL, Y inches from the bay centerline (positive toward the left
// sidewall). Rolling stock footprints are rectangles in this plane,
// used for overlap and bay-containment advisories.
package floor

import (
	"fmt"

	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/airliftops/loadmaster/internal/catalog"
	"github.com/airliftops/loadmaster/pkg/core"
)

// rectangle builds a closed polygon for an axis-aligned rectangle.
func rectangle(minX, minY, maxX, maxY float64) (geom.Polygon, error) {
	seq := geom.NewSequence([]float64{
		minX, minY,
		maxX, minY,
		maxX, maxY,
		minX, maxY,
		minX, minY,
	}, geom.DimXY)
	ring, err := geom.NewLineString(seq)
	if err != nil {
		return geom.Polygon{}, fmt.Errorf("rectangle ring: %w", err)
	}
	poly, err := geom.NewPolygon([]geom.LineString{ring})
	if err != nil {
		return geom.Polygon{}, fmt.Errorf("rectangle polygon: %w", err)
	}
	return poly, nil
}

// VehicleFootprint returns the floor rectangle occupied by a vehicle,
// centered on its longitudinal/lateral position.
func VehicleFootprint(v *core.Vehicle) (geom.Polygon, error) {
	halfLen := v.Length / 2
	halfWidth := v.Width / 2
	return rectangle(
		v.LongitudinalPosition-halfLen,
		v.LateralPosition-halfWidth,
		v.LongitudinalPosition+halfLen,
		v.LateralPosition+halfWidth,
	)
}

// BayOutline returns the usable cargo floor for an airframe.
func BayOutline(spec *catalog.AircraftSpec) (geom.Polygon, error) {
	return rectangle(0, -spec.CargoWidth/2, spec.CargoLength, spec.CargoWidth/2)
}

// Overlaps reports whether two footprints intersect. Edge contact
// counts as an overlap; loaders want clearance, not adjacency.
func Overlaps(a, b geom.Polygon) bool {
	return geom.Intersects(a.AsGeometry(), b.AsGeometry())
}

// WithinBay reports whether a footprint lies entirely on the cargo
// floor.
func WithinBay(footprint geom.Polygon, spec *catalog.AircraftSpec) (bool, error) {
	bay, err := BayOutline(spec)
	if err != nil {
		return false, err
	}
	outside, err := geom.Difference(footprint.AsGeometry(), bay.AsGeometry())
	if err != nil {
		return false, fmt.Errorf("footprint difference: %w", err)
	}
	return outside.IsEmpty(), nil
}

// Advisories checks every vehicle on a load for pairwise overlap and
// bay containment. These are loading-crew advisories, deliberately
// separate from the validator's fixed three-rule contract.
func Advisories(load *core.FlightLoad, spec *catalog.AircraftSpec) ([]string, error) {
	var advisories []string

	footprints := make([]geom.Polygon, len(load.Vehicles))
	for i := range load.Vehicles {
		if load.Vehicles[i].Length == 0 || load.Vehicles[i].Width == 0 {
			continue // dimensions unknown, nothing to check
		}
		fp, err := VehicleFootprint(&load.Vehicles[i])
		if err != nil {
			return nil, fmt.Errorf("vehicle %s footprint: %w", load.Vehicles[i].ID, err)
		}
		footprints[i] = fp
	}

	for i := range load.Vehicles {
		if load.Vehicles[i].Length == 0 || load.Vehicles[i].Width == 0 {
			continue
		}
		ok, err := WithinBay(footprints[i], spec)
		if err != nil {
			return nil, err
		}
		if !ok {
			advisories = append(advisories, fmt.Sprintf(
				"Vehicle %s extends outside the cargo bay", load.Vehicles[i].ID))
		}
		for j := i + 1; j < len(load.Vehicles); j++ {
			if load.Vehicles[j].Length == 0 || load.Vehicles[j].Width == 0 {
				continue
			}
			if Overlaps(footprints[i], footprints[j]) {
				advisories = append(advisories, fmt.Sprintf(
					"Vehicles %s and %s overlap on the cargo floor",
					load.Vehicles[i].ID, load.Vehicles[j].ID))
			}
		}
	}
	return advisories, nil
}
