package geo

import (
	"strings"
	"testing"

	"github.com/ht-tools/housing-atlas/pkg/models/domain"
	"github.com/ht-tools/housing-atlas/pkg/services/satisfaction"
	"github.com/ht-tools/housing-atlas/pkg/store/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boundaryFixture = `{
	"type": "FeatureCollection",
	"features": [
		{
			"properties": {"Distrito": "Lisboa"},
			"geometry": {"type": "Polygon", "coordinates": [[[-9.0, 38.0], [-9.0, 39.0], [-8.0, 39.0], [-8.0, 38.0]]]}
		},
		{
			"properties": {"Distrito": "Porto"},
			"geometry": {"type": "Polygon", "coordinates": [[[-8.8, 41.0], [-8.8, 41.4], [-8.2, 41.4], [-8.2, 41.0]]]}
		},
		{
			"properties": {"Distrito": "Faro"},
			"geometry": {"type": "Polygon", "coordinates": [[[-8.0, 37.0], [-8.0, 37.5], [-7.4, 37.5], [-7.4, 37.0]]]}
		}
	]
}`

func loadFixture(t *testing.T) *geojson.FeatureCollection {
	t.Helper()
	fc, err := geojson.Parse(strings.NewReader(boundaryFixture))
	require.NoError(t, err)
	return fc
}

func TestJoin(t *testing.T) {
	aliases := DefaultAliasTable()
	scale := satisfaction.DefaultScale()

	t.Run("survey rows through group means onto the map", func(t *testing.T) {
		rows := []domain.SurveyRow{
			{Situation: domain.SituationRenting, Satisfaction: domain.VerySatisfied, District: "Lisboa"},
			{Situation: domain.SituationRenting, Satisfaction: domain.Dissatisfied, District: "Lisboa"},
			{Situation: domain.SituationOwning, Satisfaction: domain.VeryDissatisfied, District: "Porto"},
		}
		byDistrict := satisfaction.GroupMean(
			rows, satisfaction.ByDistrict, satisfaction.WeightScore(scale), nil)

		join := Join(byDistrict, aliases, loadFixture(t))
		require.Len(t, join.Entries, 3)

		lisboa := entryByKey(t, join, "lisboa")
		require.NotNil(t, lisboa.Score)
		assert.InDelta(t, 0.5, *lisboa.Score, 1e-9)
		assert.Equal(t, 2, lisboa.Count)
		assert.Equal(t, "high", lisboa.Bucket.Key)

		porto := entryByKey(t, join, "porto")
		require.NotNil(t, porto.Score)
		assert.InDelta(t, -2, *porto.Score, 1e-9)
		assert.Equal(t, "very-low", porto.Bucket.Key)
	})

	t.Run("feature without data gets the no-data bucket", func(t *testing.T) {
		join := Join(nil, aliases, loadFixture(t))
		faro := entryByKey(t, join, "faro")
		assert.Nil(t, faro.Score)
		assert.Equal(t, 0, faro.Count)
		assert.Equal(t, "no-data", faro.Bucket.Key)
	})

	t.Run("unmatched district names are dropped and reported", func(t *testing.T) {
		mean := 1.0
		summary := domain.GroupSummary{
			{Key: "Atlantis", Mean: &mean, Count: 3},
			{Key: "Lisboa", Mean: &mean, Count: 1},
		}
		join := Join(summary, aliases, loadFixture(t))
		assert.Equal(t, []string{"Atlantis"}, join.Unmatched)
		require.NotNil(t, entryByKey(t, join, "lisboa").Score)
	})

	t.Run("raw names sharing a canonical key combine into a weighted mean", func(t *testing.T) {
		mLow, mHigh := 0.0, 2.0
		summary := domain.GroupSummary{
			{Key: "Lisboa", Mean: &mLow, Count: 3},
			{Key: "LISBOA ", Mean: &mHigh, Count: 1},
		}
		join := Join(summary, aliases, loadFixture(t))
		lisboa := entryByKey(t, join, "lisboa")
		require.NotNil(t, lisboa.Score)
		assert.InDelta(t, 0.5, *lisboa.Score, 1e-9)
		assert.Equal(t, 4, lisboa.Count)
	})

	t.Run("entries carry centroids", func(t *testing.T) {
		join := Join(nil, aliases, loadFixture(t))
		lisboa := entryByKey(t, join, "lisboa")
		require.NotNil(t, lisboa.Centroid)
		assert.InDelta(t, 38.5, lisboa.Centroid.Lat, 1e-9)
		assert.InDelta(t, -8.5, lisboa.Centroid.Lng, 1e-9)
	})

	t.Run("nil collection yields an empty join", func(t *testing.T) {
		join := Join(nil, aliases, nil)
		assert.Empty(t, join.Entries)
	})
}

func entryByKey(t *testing.T, join domain.DistrictJoin, key string) domain.DistrictEntry {
	t.Helper()
	for _, e := range join.Entries {
		if e.Key == key {
			return e
		}
	}
	t.Fatalf("no entry for key %q", key)
	return domain.DistrictEntry{}
}
