package geo

import (
	"github.com/ht-tools/housing-atlas/pkg/models/domain"
	"github.com/ht-tools/housing-atlas/pkg/store/geojson"
)

// Join merges per-district survey scores onto the boundary dataset.
//
// byDistrict is the district group summary keyed by raw survey names. Each
// key is resolved through the alias table; names without an entry land in
// Unmatched and are dropped from the join. When several raw names resolve
// to the same canonical key their scores combine into one weighted mean.
// Every boundary feature produces exactly one entry: matched features
// carry score, count and threshold bucket, the rest the no-data bucket.
func Join(
	byDistrict domain.GroupSummary,
	aliases AliasTable,
	fc *geojson.FeatureCollection,
) domain.DistrictJoin {
	scores := map[string]domain.DistrictScore{}
	var unmatched []string

	for _, stat := range byDistrict {
		key, ok := aliases.Canonical(stat.Key)
		if !ok {
			unmatched = append(unmatched, stat.Key)
			continue
		}
		if stat.Mean == nil || stat.Count == 0 {
			continue
		}
		existing := scores[key]
		total := existing.Count + stat.Count
		mean := (existing.Mean*float64(existing.Count) + *stat.Mean*float64(stat.Count)) / float64(total)
		scores[key] = domain.DistrictScore{Mean: mean, Count: total}
	}

	join := domain.DistrictJoin{Unmatched: unmatched}
	if fc == nil {
		return join
	}

	for _, feature := range fc.Features {
		entry := domain.DistrictEntry{
			Key:    Normalize(feature.District),
			Name:   feature.District,
			Bucket: NoDataBucket(),
		}
		if c, ok := feature.Centroid(); ok {
			entry.Centroid = &c
		}
		if score, ok := scores[entry.Key]; ok {
			mean := score.Mean
			entry.Score = &mean
			entry.Count = score.Count
			entry.Bucket = BucketFor(score.Mean)
		}
		join.Entries = append(join.Entries, entry)
	}
	return join
}
