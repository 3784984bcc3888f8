package geo

import "github.com/ht-tools/housing-atlas/pkg/models/domain"

// The display buckets and their color tokens. Map fill and legend both go
// through BucketFor/Legend so the thresholds cannot drift apart.
var (
	bucketVeryHigh = domain.Bucket{Key: "very-high", Label: "Very High Satisfaction", Color: "#1a9850"}
	bucketHigh     = domain.Bucket{Key: "high", Label: "High Satisfaction", Color: "#91cf60"}
	bucketNeutral  = domain.Bucket{Key: "neutral", Label: "Neutral Satisfaction", Color: "#fee08b"}
	bucketLow      = domain.Bucket{Key: "low", Label: "Low Satisfaction", Color: "#fc8d59"}
	bucketVeryLow  = domain.Bucket{Key: "very-low", Label: "Very Low Satisfaction", Color: "#d73027"}
	bucketNoData   = domain.Bucket{Key: "no-data", Label: "No Data", Color: "#f7f7f7"}
)

// BucketFor maps a mean signed weight onto its display bucket. A score
// exactly on a threshold falls into the higher bucket: 0.5 is "high".
func BucketFor(score float64) domain.Bucket {
	switch {
	case score >= 1.5:
		return bucketVeryHigh
	case score >= 0.5:
		return bucketHigh
	case score >= -0.5:
		return bucketNeutral
	case score >= -1.5:
		return bucketLow
	default:
		return bucketVeryLow
	}
}

// NoDataBucket is the bucket for boundary features with no matched score.
func NoDataBucket() domain.Bucket {
	return bucketNoData
}

// Legend returns the bucket list in display order, highest satisfaction
// first, with the score range of each bucket. The no-data bucket closes
// the list with an open range.
func Legend() []domain.LegendEntry {
	f := func(v float64) *float64 { return &v }
	return []domain.LegendEntry{
		{Bucket: bucketVeryHigh, Min: f(1.5), Max: f(2.0)},
		{Bucket: bucketHigh, Min: f(0.5), Max: f(1.5)},
		{Bucket: bucketNeutral, Min: f(-0.5), Max: f(0.5)},
		{Bucket: bucketLow, Min: f(-1.5), Max: f(-0.5)},
		{Bucket: bucketVeryLow, Min: f(-2.0), Max: f(-1.5)},
		{Bucket: bucketNoData},
	}
}
