package geojson

import (
	"context"
	"fmt"
	"os"
)

// Loader provides the boundary dataset. Implementations wrap every failure
// in ErrBoundaryUnavailable so callers never mistake a missing dataset for
// an empty one.
type Loader interface {
	Load(ctx context.Context) (*FeatureCollection, error)
}

// FileLoader reads the dataset from a local GeoJSON file.
type FileLoader struct {
	Path string
}

func NewFileLoader(path string) FileLoader {
	return FileLoader{Path: path}
}

func (l FileLoader) Load(_ context.Context) (*FeatureCollection, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrBoundaryUnavailable, l.Path, err)
	}
	defer f.Close()

	fc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.Path, err)
	}
	return fc, nil
}
