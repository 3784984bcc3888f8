package geojson

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCollection = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"Distrito": "Lisboa"},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[-9.0, 38.0], [-9.0, 39.0], [-8.0, 39.0], [-8.0, 38.0]]]
			}
		},
		{
			"type": "Feature",
			"properties": {"Distrito": "Açores"},
			"geometry": {
				"type": "MultiPolygon",
				"coordinates": [
					[[[-25.0, 37.0], [-25.0, 38.0], [-24.0, 38.0]]],
					[[[-28.0, 38.0], [-28.0, 39.0], [-27.0, 39.0]]]
				]
			}
		}
	]
}`

func TestParse(t *testing.T) {
	t.Run("polygon and multipolygon features", func(t *testing.T) {
		fc, err := Parse(strings.NewReader(sampleCollection))
		require.NoError(t, err)
		require.Len(t, fc.Features, 2)

		lisboa := fc.Features[0]
		assert.Equal(t, "Lisboa", lisboa.District)
		require.Len(t, lisboa.Polygons, 1)
		// Positions are [lng, lat] on the wire.
		assert.Equal(t, 38.0, lisboa.Polygons[0][0][0].Lat)
		assert.Equal(t, -9.0, lisboa.Polygons[0][0][0].Lng)

		acores := fc.Features[1]
		assert.Len(t, acores.Polygons, 2)
	})

	t.Run("malformed json is a boundary failure", func(t *testing.T) {
		_, err := Parse(strings.NewReader("{not json"))
		assert.ErrorIs(t, err, ErrBoundaryUnavailable)
	})

	t.Run("missing district property is a boundary failure", func(t *testing.T) {
		payload := `{"type":"FeatureCollection","features":[{"properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0]]]}}]}`
		_, err := Parse(strings.NewReader(payload))
		assert.ErrorIs(t, err, ErrBoundaryUnavailable)
	})

	t.Run("unsupported geometry is a boundary failure", func(t *testing.T) {
		payload := `{"type":"FeatureCollection","features":[{"properties":{"Distrito":"Faro"},"geometry":{"type":"Point","coordinates":[0,0]}}]}`
		_, err := Parse(strings.NewReader(payload))
		assert.ErrorIs(t, err, ErrBoundaryUnavailable)
	})

	t.Run("wrong root type is a boundary failure", func(t *testing.T) {
		_, err := Parse(strings.NewReader(`{"type":"Feature"}`))
		assert.ErrorIs(t, err, ErrBoundaryUnavailable)
	})
}

func TestFeatureCentroid(t *testing.T) {
	t.Run("vertex average of first ring", func(t *testing.T) {
		fc, err := Parse(strings.NewReader(sampleCollection))
		require.NoError(t, err)

		c, ok := fc.Features[0].Centroid()
		require.True(t, ok)
		assert.InDelta(t, 38.5, c.Lat, 1e-9)
		assert.InDelta(t, -8.5, c.Lng, 1e-9)
	})

	t.Run("multipolygon uses first polygon", func(t *testing.T) {
		fc, err := Parse(strings.NewReader(sampleCollection))
		require.NoError(t, err)

		c, ok := fc.Features[1].Centroid()
		require.True(t, ok)
		assert.InDelta(t, 37.666666666, c.Lat, 1e-6)
	})

	t.Run("empty geometry has no centroid", func(t *testing.T) {
		_, ok := Feature{District: "Nowhere"}.Centroid()
		assert.False(t, ok)
	})
}

func TestFileLoader(t *testing.T) {
	ctx := context.Background()

	t.Run("loads a valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "districts.geojson")
		require.NoError(t, os.WriteFile(path, []byte(sampleCollection), 0o600))

		fc, err := NewFileLoader(path).Load(ctx)
		require.NoError(t, err)
		assert.Len(t, fc.Features, 2)
	})

	t.Run("missing file is a boundary failure", func(t *testing.T) {
		_, err := NewFileLoader("/does/not/exist.geojson").Load(ctx)
		assert.ErrorIs(t, err, ErrBoundaryUnavailable)
	})

	t.Run("corrupt file is a boundary failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.geojson")
		require.NoError(t, os.WriteFile(path, []byte("<html>"), 0o600))

		_, err := NewFileLoader(path).Load(ctx)
		assert.ErrorIs(t, err, ErrBoundaryUnavailable)
	})
}

type stubS3 struct {
	out *s3.GetObjectOutput
	err error
}

func (s stubS3) GetObject(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return s.out, s.err
}

func TestS3Loader(t *testing.T) {
	ctx := context.Background()

	t.Run("loads object body", func(t *testing.T) {
		client := stubS3{out: &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(sampleCollection))}}
		fc, err := NewS3Loader(client, "geo", "districts.geojson").Load(ctx)
		require.NoError(t, err)
		assert.Len(t, fc.Features, 2)
	})

	t.Run("request failure is a boundary failure", func(t *testing.T) {
		client := stubS3{err: errors.New("no such bucket")}
		_, err := NewS3Loader(client, "geo", "districts.geojson").Load(ctx)
		assert.ErrorIs(t, err, ErrBoundaryUnavailable)
	})
}
