package satisfaction

import (
	"math"

	"github.com/ht-tools/housing-atlas/pkg/models/domain"
)

// Overview computes the survey-wide headline numbers: per-level counts in
// display order, the satisfied and dissatisfied shares, and the
// income-satisfaction correlation. Levels with zero respondents are
// omitted from the counts. Rates treat only rows with a known label as
// the population, so unknown labels cannot dilute them.
func Overview(rows []domain.SurveyRow, scale Scale) domain.Overview {
	counts := map[domain.SatisfactionLevel]int{}
	known := 0
	for _, row := range rows {
		if !scale.Known(row.Satisfaction) {
			continue
		}
		counts[row.Satisfaction]++
		known++
	}

	var levels []domain.LevelCount
	for _, level := range domain.SatisfactionLevels() {
		if counts[level] == 0 {
			continue
		}
		levels = append(levels, domain.LevelCount{Level: level, Count: counts[level]})
	}

	overview := domain.Overview{
		TotalRows:         len(rows),
		Levels:            levels,
		IncomeCorrelation: IncomeCorrelation(rows, scale),
	}
	if known > 0 {
		satisfied := counts[domain.VerySatisfied] + counts[domain.Satisfied]
		dissatisfied := counts[domain.Dissatisfied] + counts[domain.VeryDissatisfied]
		overview.SatisfiedRate = float64(satisfied) / float64(known)
		overview.DissatisfiedRate = float64(dissatisfied) / float64(known)
	}
	return overview
}

// IncomeCorrelation is the Pearson correlation between numeric income and
// the ordinal satisfaction score. Only rows carrying both a known label
// and a numeric income contribute; a missing income drops the pair rather
// than entering as zero. Returns nil with fewer than two contributing
// rows or when either series is constant.
func IncomeCorrelation(rows []domain.SurveyRow, scale Scale) *float64 {
	var incomes, scores []float64
	for _, row := range rows {
		v, ok := scale.Ordinal(row.Satisfaction)
		if !ok || row.Income == nil {
			continue
		}
		incomes = append(incomes, *row.Income)
		scores = append(scores, float64(v))
	}
	if len(incomes) < 2 {
		return nil
	}

	n := float64(len(incomes))
	meanX, meanY := mean(incomes), mean(scores)
	var cov, varX, varY float64
	for i := range incomes {
		dx := incomes[i] - meanX
		dy := scores[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return nil
	}
	r := (cov / n) / (math.Sqrt(varX/n) * math.Sqrt(varY/n))
	return &r
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
