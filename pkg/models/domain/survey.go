package domain

type HousingSituation string

const (
	SituationOwning  HousingSituation = "Owning"
	SituationRenting HousingSituation = "Renting"
	SituationOther   HousingSituation = "Other"
)

type SatisfactionLevel string

const (
	VerySatisfied    SatisfactionLevel = "Very Satisfied"
	Satisfied        SatisfactionLevel = "Satisfied"
	Neutral          SatisfactionLevel = "Neutral"
	Dissatisfied     SatisfactionLevel = "Dissatisfied"
	VeryDissatisfied SatisfactionLevel = "Very Dissatisfied"
)

// SatisfactionLevels returns the five levels in display order,
// most satisfied first. Cross-tab columns and legends follow this order.
func SatisfactionLevels() []SatisfactionLevel {
	return []SatisfactionLevel{
		VerySatisfied,
		Satisfied,
		Neutral,
		Dissatisfied,
		VeryDissatisfied,
	}
}

// SurveyRow is one respondent from the processed survey table.
// Rows are consumed by value and never mutated by the aggregation pipeline.
type SurveyRow struct {
	Situation     HousingSituation
	Satisfaction  SatisfactionLevel
	IncomeBracket string
	// RentBurden is only meaningful when Situation is Renting.
	RentBurden string
	// District is the free-text place name as entered by the respondent.
	District string
	// Reasons holds dissatisfaction indicators keyed by canonical indicator ID.
	Reasons map[string]bool
	// Income is the numeric annual income in EUR, nil when the respondent
	// gave none. A missing income is never folded to zero.
	Income *float64
}
