package satisfaction

import "github.com/ht-tools/housing-atlas/pkg/models/domain"

// Score extracts a numeric value from a row. The second return reports
// whether the value is defined; undefined values are excluded from both
// the mean and the count of their group.
type Score func(domain.SurveyRow) (float64, bool)

// OrdinalScore scores rows on the 1..5 scale.
func OrdinalScore(scale Scale) Score {
	return func(row domain.SurveyRow) (float64, bool) {
		v, ok := scale.Ordinal(row.Satisfaction)
		return float64(v), ok
	}
}

// WeightScore scores rows on the signed -2..+2 scale.
func WeightScore(scale Scale) Score {
	return func(row domain.SurveyRow) (float64, bool) {
		return scale.Weight(row.Satisfaction)
	}
}

// RentBurdenOrder is the canonical bracket order, most affordable first.
func RentBurdenOrder() []string {
	return []string{
		"≤30% (Affordable)",
		"31-50% (Moderate)",
		"51-80% (High)",
		">80% (Very High)",
		"Unknown",
	}
}

// GroupMean computes the mean score and contributing-row count per distinct
// group value. Rows with a missing key or an undefined score do not
// contribute. When order is non-nil the summary follows it, omitting
// categories absent from the data; keys present in the data but missing
// from the list are appended afterwards in first-seen order. A nil order
// keeps first-seen order throughout.
func GroupMean(
	rows []domain.SurveyRow,
	key Dimension,
	score Score,
	order []string,
) domain.GroupSummary {
	type acc struct {
		sum   float64
		count int
	}

	totals := map[string]*acc{}
	var seen []string
	for _, row := range rows {
		k := key(row)
		if k == "" {
			continue
		}
		v, ok := score(row)
		if !ok {
			continue
		}
		a, exists := totals[k]
		if !exists {
			a = &acc{}
			totals[k] = a
			seen = append(seen, k)
		}
		a.sum += v
		a.count++
	}

	keys := seen
	if order != nil {
		ordered := make([]string, 0, len(totals))
		listed := make(map[string]struct{}, len(order))
		for _, k := range order {
			listed[k] = struct{}{}
			if _, ok := totals[k]; ok {
				ordered = append(ordered, k)
			}
		}
		for _, k := range seen {
			if _, ok := listed[k]; !ok {
				ordered = append(ordered, k)
			}
		}
		keys = ordered
	}

	summary := make(domain.GroupSummary, 0, len(keys))
	for _, k := range keys {
		a := totals[k]
		mean := a.sum / float64(a.count)
		summary = append(summary, domain.GroupStat{Key: k, Mean: &mean, Count: a.count})
	}
	return summary
}

// Extremes picks the groups with the highest and lowest mean from a
// summary. Groups without a defined mean are skipped; ties keep the
// earlier group, so the summary's own order decides.
func Extremes(summary domain.GroupSummary) domain.GroupExtremes {
	var ext domain.GroupExtremes
	for _, stat := range summary {
		if stat.Mean == nil {
			continue
		}
		s := stat
		if ext.Highest == nil || *s.Mean > *ext.Highest.Mean {
			ext.Highest = &s
		}
		if ext.Lowest == nil || *s.Mean < *ext.Lowest.Mean {
			ext.Lowest = &s
		}
	}
	return ext
}
