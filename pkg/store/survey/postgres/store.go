package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/ht-tools/housing-atlas/pkg/models/domain"
	"github.com/ht-tools/housing-atlas/pkg/services/satisfaction"
)

const responsesTable = "survey_responses"

// Store reads survey rows from Postgres. The reason indicator columns are
// enumerated from the reason dictionary when the store is built, so an
// unknown indicator is a construction-time error instead of a silent
// column scan at query time.
type Store struct {
	db        *sql.DB
	reasonIDs []string
	query     string
}

func NewStore(db *sql.DB, dict satisfaction.ReasonDictionary) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	ids := dict.IDs()
	columns := []string{
		"housing_situation",
		"satisfaction_level",
		"income_bracket",
		"rent_burden",
		"district",
		"numeric_income",
	}
	for _, id := range ids {
		// Indicator IDs contain hyphens, so the identifiers need quoting.
		columns = append(columns, fmt.Sprintf("%q", id))
	}

	return &Store{
		db:        db,
		reasonIDs: ids,
		query:     fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), responsesTable),
	}, nil
}

func (s *Store) GetRows(ctx context.Context) ([]domain.SurveyRow, error) {
	rows, err := s.db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("query survey responses: %w", err)
	}
	defer rows.Close()

	var result []domain.SurveyRow
	for rows.Next() {
		var (
			situation, level              sql.NullString
			incomeBracket, burden, region sql.NullString
			income                        sql.NullFloat64
		)

		indicators := make([]sql.NullBool, len(s.reasonIDs))
		dest := []any{&situation, &level, &incomeBracket, &burden, &region, &income}
		for i := range indicators {
			dest = append(dest, &indicators[i])
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan survey response: %w", err)
		}

		row := domain.SurveyRow{
			Situation:     domain.HousingSituation(situation.String),
			Satisfaction:  domain.SatisfactionLevel(level.String),
			IncomeBracket: incomeBracket.String,
			RentBurden:    burden.String,
			District:      region.String,
			Reasons:       make(map[string]bool, len(s.reasonIDs)),
		}
		if income.Valid {
			row.Income = &income.Float64
		}
		for i, id := range s.reasonIDs {
			row.Reasons[id] = indicators[i].Valid && indicators[i].Bool
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate survey responses: %w", err)
	}
	return result, nil
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
