package api

type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

type Overview struct {
	TotalRows         int          `json:"total_rows"`
	Levels            []LevelCount `json:"levels"`
	SatisfiedRate     float64      `json:"satisfied_rate"`
	DissatisfiedRate  float64      `json:"dissatisfied_rate"`
	IncomeCorrelation *float64     `json:"income_correlation,omitempty"`
}

type CrossTabRow struct {
	Key string `json:"key"`
	// Counts is positional, one value per column in CrossTab.Columns.
	Counts []int `json:"counts"`
	Total  int   `json:"total"`
}

type CrossTab struct {
	Dimension string        `json:"dimension"`
	Columns   []string      `json:"columns"`
	Rows      []CrossTabRow `json:"rows"`
	Total     int           `json:"total"`
}

type ReasonCount struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type GroupStat struct {
	Key string `json:"key"`
	// Mean is null for groups with no defined score, never zero-filled.
	Mean  *float64 `json:"mean"`
	Count int      `json:"count"`
}

type Bucket struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type DistrictEntry struct {
	Key      string      `json:"key"`
	Name     string      `json:"name"`
	Score    *float64    `json:"score,omitempty"`
	Count    int         `json:"count"`
	Bucket   Bucket      `json:"bucket"`
	Centroid *Coordinate `json:"centroid,omitempty"`
}

type LegendEntry struct {
	Bucket Bucket   `json:"bucket"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

type DistrictMap struct {
	Districts []DistrictEntry `json:"districts"`
	Unmatched []string        `json:"unmatched,omitempty"`
	Legend    []LegendEntry   `json:"legend"`
}
