package domain

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Bucket is the discrete display category derived from a district's mean
// signed satisfaction weight. Color is the hex token the renderer uses for
// both the map fill and the legend swatch.
type Bucket struct {
	Key   string
	Label string
	Color string
}

// DistrictScore is the mean signed satisfaction weight and sample count for
// one canonical boundary-feature key. It lives for a single rendering pass.
type DistrictScore struct {
	Mean  float64
	Count int
}

// DistrictEntry is the join result for one boundary feature. Score is nil
// when no survey district matched the feature; the entry then carries the
// no-data bucket instead of a numeric default.
type DistrictEntry struct {
	// Key is the canonical boundary-feature key.
	Key string
	// Name is the feature's display name as carried by the boundary dataset.
	Name     string
	Score    *float64
	Count    int
	Bucket   Bucket
	Centroid *Coordinate
}

// DistrictJoin is the full survey-to-boundary join: one entry per boundary
// feature, plus the raw district names that had no alias entry. An empty
// Entries slice means the boundary dataset itself was empty; callers learn
// about an unavailable dataset through an error, never through this value.
type DistrictJoin struct {
	Entries []DistrictEntry
	// Unmatched lists survey district names dropped from the join because
	// the alias table had no entry for them. Kept for diagnostics.
	Unmatched []string
}
