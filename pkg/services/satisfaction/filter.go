package satisfaction

import "github.com/ht-tools/housing-atlas/pkg/models/domain"

// FilterByLevels keeps the rows whose satisfaction label appears in levels.
// An empty level list keeps everything, matching a cleared selection.
func FilterByLevels(rows []domain.SurveyRow, levels []domain.SatisfactionLevel) []domain.SurveyRow {
	if len(levels) == 0 {
		return rows
	}
	allowed := make(map[domain.SatisfactionLevel]struct{}, len(levels))
	for _, level := range levels {
		allowed[level] = struct{}{}
	}
	var filtered []domain.SurveyRow
	for _, row := range rows {
		if _, ok := allowed[row.Satisfaction]; ok {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Renters keeps only the rows of respondents who rent. Rent burden is only
// meaningful for this subset.
func Renters(rows []domain.SurveyRow) []domain.SurveyRow {
	var renters []domain.SurveyRow
	for _, row := range rows {
		if row.Situation == domain.SituationRenting {
			renters = append(renters, row)
		}
	}
	return renters
}
