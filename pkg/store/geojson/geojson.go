package geojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ht-tools/housing-atlas/pkg/models/domain"
)

// ErrBoundaryUnavailable marks a structural failure: the boundary dataset
// could not be loaded or parsed. Callers check it with errors.Is to tell
// a broken map apart from a district that simply has no survey data.
var ErrBoundaryUnavailable = errors.New("boundary dataset unavailable")

// districtProperty is the feature property carrying the district name in
// the boundary dataset.
const districtProperty = "Distrito"

// Feature is one boundary feature: a district name and its polygon rings.
// Polygons holds polygons -> rings -> points; a plain Polygon geometry is
// stored as a single-element slice so both geometry kinds read the same.
type Feature struct {
	District string
	Polygons [][][]domain.Coordinate
}

// Centroid approximates the feature's center as the arithmetic mean of the
// first polygon's outer-ring vertices. This is not an area-weighted
// centroid and is inexact for irregular shapes; it matches what the map
// popups have always used, so it stays.
func (f Feature) Centroid() (domain.Coordinate, bool) {
	if len(f.Polygons) == 0 || len(f.Polygons[0]) == 0 || len(f.Polygons[0][0]) == 0 {
		return domain.Coordinate{}, false
	}
	ring := f.Polygons[0][0]
	var lat, lng float64
	for _, p := range ring {
		lat += p.Lat
		lng += p.Lng
	}
	n := float64(len(ring))
	return domain.Coordinate{Lat: lat / n, Lng: lng / n}, true
}

// FeatureCollection is the parsed boundary dataset.
type FeatureCollection struct {
	Features []Feature
}

type rawCollection struct {
	Type     string       `json:"type"`
	Features []rawFeature `json:"features"`
}

type rawFeature struct {
	Properties map[string]any `json:"properties"`
	Geometry   rawGeometry    `json:"geometry"`
}

type rawGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Parse decodes a GeoJSON FeatureCollection, keeping the district name and
// geometry of every feature. Unsupported geometry types and malformed
// features make the whole dataset unavailable rather than producing a
// partial collection.
func Parse(r io.Reader) (*FeatureCollection, error) {
	var raw rawCollection
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrBoundaryUnavailable, err)
	}
	if raw.Type != "FeatureCollection" {
		return nil, fmt.Errorf("%w: unexpected root type %q", ErrBoundaryUnavailable, raw.Type)
	}

	fc := &FeatureCollection{Features: make([]Feature, 0, len(raw.Features))}
	for i, rf := range raw.Features {
		name, _ := rf.Properties[districtProperty].(string)
		if name == "" {
			return nil, fmt.Errorf("%w: feature %d has no %q property", ErrBoundaryUnavailable, i, districtProperty)
		}

		polygons, err := parseGeometry(rf.Geometry)
		if err != nil {
			return nil, fmt.Errorf("%w: feature %q: %v", ErrBoundaryUnavailable, name, err)
		}
		fc.Features = append(fc.Features, Feature{District: name, Polygons: polygons})
	}
	return fc, nil
}

func parseGeometry(g rawGeometry) ([][][]domain.Coordinate, error) {
	switch g.Type {
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
			return nil, fmt.Errorf("polygon coordinates: %v", err)
		}
		poly, err := toRings(rings)
		if err != nil {
			return nil, err
		}
		return [][][]domain.Coordinate{poly}, nil
	case "MultiPolygon":
		var multi [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &multi); err != nil {
			return nil, fmt.Errorf("multipolygon coordinates: %v", err)
		}
		polygons := make([][][]domain.Coordinate, 0, len(multi))
		for _, rings := range multi {
			poly, err := toRings(rings)
			if err != nil {
				return nil, err
			}
			polygons = append(polygons, poly)
		}
		return polygons, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %q", g.Type)
	}
}

func toRings(rings [][][]float64) ([][]domain.Coordinate, error) {
	out := make([][]domain.Coordinate, 0, len(rings))
	for _, ring := range rings {
		points := make([]domain.Coordinate, 0, len(ring))
		for _, pos := range ring {
			if len(pos) < 2 {
				return nil, fmt.Errorf("position with %d values", len(pos))
			}
			// GeoJSON positions are [lng, lat].
			points = append(points, domain.Coordinate{Lat: pos[1], Lng: pos[0]})
		}
		out = append(out, points)
	}
	return out, nil
}
