package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ht-tools/housing-atlas/pkg/models/domain"
	"github.com/ht-tools/housing-atlas/pkg/services/satisfaction"
)

// Column names of the processed survey export.
const (
	colSituation     = "housing_situation"
	colSatisfaction  = "satisfaction_level"
	colIncomeBracket = "rendimento-anual"
	colRentBurden    = "rent_burden"
	colDistrict      = "distrito"
	colIncome        = "rendimento_numerical"
)

// Store reads survey rows from the processed CSV export. The header decides
// column positions; reason indicator columns are matched against the reason
// dictionary's enumerated IDs, never by prefix.
type Store struct {
	path string
	dict satisfaction.ReasonDictionary
}

func NewStore(path string, dict satisfaction.ReasonDictionary) *Store {
	return &Store{path: path, dict: dict}
}

func (s *Store) GetRows(_ context.Context) ([]domain.SurveyRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open survey file %s: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read survey header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	known := make(map[string]struct{})
	for _, id := range s.dict.IDs() {
		known[id] = struct{}{}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []domain.SurveyRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read survey line %d: %w", line, err)
		}

		row := domain.SurveyRow{
			Situation:     domain.HousingSituation(field(record, colSituation)),
			Satisfaction:  domain.SatisfactionLevel(field(record, colSatisfaction)),
			IncomeBracket: field(record, colIncomeBracket),
			RentBurden:    field(record, colRentBurden),
			District:      field(record, colDistrict),
			Reasons:       map[string]bool{},
		}
		if v := field(record, colIncome); v != "" {
			income, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("survey line %d: bad income %q: %w", line, v, err)
			}
			row.Income = &income
		}
		for name, i := range index {
			if _, ok := known[name]; !ok || i >= len(record) {
				continue
			}
			row.Reasons[name] = parseBool(record[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "sim":
		return true
	default:
		return false
	}
}
