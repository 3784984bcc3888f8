package domain

// LevelCount is the number of respondents at one satisfaction level.
type LevelCount struct {
	Level SatisfactionLevel
	Count int
}

// Overview summarizes the whole survey: per-level counts in display order
// (levels with zero respondents omitted), the satisfied/dissatisfied shares,
// and the Pearson correlation between numeric income and the ordinal
// satisfaction score. Correlation is nil when fewer than two rows carry
// both values or when either series has zero variance.
type Overview struct {
	TotalRows         int
	Levels            []LevelCount
	SatisfiedRate     float64
	DissatisfiedRate  float64
	IncomeCorrelation *float64
}

// LegendEntry describes one bucket of the map legend together with its
// score range. Min/Max are nil for open-ended ranges and for the no-data
// bucket.
type LegendEntry struct {
	Bucket Bucket
	Min    *float64
	Max    *float64
}

// GroupExtremes points at the groups of one summary with the highest and
// lowest mean. Both are nil when no group carries a defined mean.
type GroupExtremes struct {
	Highest *GroupStat
	Lowest  *GroupStat
}

// Report is a complete satisfaction analysis snapshot for one rendering
// pass. Districts is nil when the caller did not request the geographic
// section; an unavailable boundary dataset surfaces as an error from the
// controller, never as a partially populated join.
type Report struct {
	Overview           Overview
	SituationCrossTab  CrossTab
	RentBurdenCrossTab CrossTab
	Reasons            []ReasonCount
	TopReasons         []ReasonCount
	IncomeGroups       GroupSummary
	RentBurdenGroups   GroupSummary
	RentBurdenExtremes GroupExtremes
	DistrictGroups     GroupSummary
	Districts          *DistrictJoin
	Legend             []LegendEntry
}
