package satisfaction

import "github.com/ht-tools/housing-atlas/pkg/models/domain"

// Dimension extracts the grouping value from a row. An empty string marks
// the value as missing; rows with missing values are skipped.
type Dimension func(domain.SurveyRow) string

func BySituation(row domain.SurveyRow) string {
	return string(row.Situation)
}

func ByIncomeBracket(row domain.SurveyRow) string {
	return row.IncomeBracket
}

func ByRentBurden(row domain.SurveyRow) string {
	return row.RentBurden
}

func ByDistrict(row domain.SurveyRow) string {
	return row.District
}

// CrossTabulate builds a frequency table of the dimension against the
// satisfaction levels in columns. Columns keep the caller's order; levels
// outside the list are dropped. Dimension values with zero surviving rows
// never appear, and an empty input yields an empty table.
func CrossTabulate(
	rows []domain.SurveyRow,
	name string,
	dim Dimension,
	columns []domain.SatisfactionLevel,
) domain.CrossTab {
	allowed := make(map[domain.SatisfactionLevel]struct{}, len(columns))
	for _, level := range columns {
		allowed[level] = struct{}{}
	}

	ct := domain.NewCrossTab(name, columns)
	for _, row := range rows {
		key := dim(row)
		if key == "" {
			continue
		}
		if _, ok := allowed[row.Satisfaction]; !ok {
			continue
		}
		ct.Increment(key, row.Satisfaction)
	}
	return ct
}
