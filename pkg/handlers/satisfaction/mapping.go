package satisfaction

import (
	"github.com/ht-tools/housing-atlas/pkg/models/api"
	"github.com/ht-tools/housing-atlas/pkg/models/domain"
	"github.com/ht-tools/housing-atlas/pkg/services/geo"
)

func toAPIOverview(o domain.Overview) api.Overview {
	levels := make([]api.LevelCount, 0, len(o.Levels))
	for _, lc := range o.Levels {
		levels = append(levels, api.LevelCount{Level: string(lc.Level), Count: lc.Count})
	}
	return api.Overview{
		TotalRows:         o.TotalRows,
		Levels:            levels,
		SatisfiedRate:     o.SatisfiedRate,
		DissatisfiedRate:  o.DissatisfiedRate,
		IncomeCorrelation: o.IncomeCorrelation,
	}
}

func toAPICrossTab(ct domain.CrossTab) api.CrossTab {
	columns := make([]string, 0, len(ct.Columns))
	for _, level := range ct.Columns {
		columns = append(columns, string(level))
	}

	rows := make([]api.CrossTabRow, 0, len(ct.RowKeys))
	for _, key := range ct.RowKeys {
		counts := make([]int, 0, len(ct.Columns))
		for _, level := range ct.Columns {
			counts = append(counts, ct.Count(key, level))
		}
		rows = append(rows, api.CrossTabRow{Key: key, Counts: counts, Total: ct.RowTotal(key)})
	}

	return api.CrossTab{
		Dimension: ct.Dimension,
		Columns:   columns,
		Rows:      rows,
		Total:     ct.Total(),
	}
}

func toAPIBucket(b domain.Bucket) api.Bucket {
	return api.Bucket{Key: b.Key, Label: b.Label, Color: b.Color}
}

func toAPIDistrictMap(join domain.DistrictJoin) api.DistrictMap {
	districts := make([]api.DistrictEntry, 0, len(join.Entries))
	for _, e := range join.Entries {
		entry := api.DistrictEntry{
			Key:    e.Key,
			Name:   e.Name,
			Score:  e.Score,
			Count:  e.Count,
			Bucket: toAPIBucket(e.Bucket),
		}
		if e.Centroid != nil {
			entry.Centroid = &api.Coordinate{Lat: e.Centroid.Lat, Lng: e.Centroid.Lng}
		}
		districts = append(districts, entry)
	}

	legend := make([]api.LegendEntry, 0)
	for _, entry := range geo.Legend() {
		legend = append(legend, api.LegendEntry{
			Bucket: toAPIBucket(entry.Bucket),
			Min:    entry.Min,
			Max:    entry.Max,
		})
	}

	return api.DistrictMap{
		Districts: districts,
		Unmatched: join.Unmatched,
		Legend:    legend,
	}
}
