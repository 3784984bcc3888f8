package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/ht-tools/housing-atlas/pkg/models/domain"
)

type TableConfig struct {
	KeyWidth   int
	ValueWidth int
	CountWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		KeyWidth:   28,
		ValueWidth: 12,
		CountWidth: 8,
	}
}

// Reporter renders a satisfaction report as plain text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(key string, value any, count any) string {
			return fmt.Sprintf("| %-*s | %*v | %*v |",
				c.config.KeyWidth, key,
				c.config.ValueWidth, value,
				c.config.CountWidth, count)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.KeyWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.CountWidth+2))
		},
		"mean": func(m *float64) string {
			if m == nil {
				return "n/a"
			}
			return fmt.Sprintf("%.2f", *m)
		},
		"score": func(s *float64) string {
			if s == nil {
				return "no data"
			}
			return fmt.Sprintf("%.2f", *s)
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v*100)
		},
		"corr": func(r *float64) string {
			if r == nil {
				return "n/a"
			}
			return fmt.Sprintf("%.2f", *r)
		},
		"crosstabRow": func(ct domain.CrossTab, key string) string {
			cells := make([]string, 0, len(ct.Columns)+1)
			cells = append(cells, fmt.Sprintf("%-*s", c.config.KeyWidth, key))
			for _, level := range ct.Columns {
				cells = append(cells, fmt.Sprintf("%*d", c.config.CountWidth, ct.Count(key, level)))
			}
			return "| " + strings.Join(cells, " | ") + " |"
		},
		"crosstabHeader": func(ct domain.CrossTab) string {
			cells := make([]string, 0, len(ct.Columns)+1)
			cells = append(cells, fmt.Sprintf("%-*s", c.config.KeyWidth, ct.Dimension))
			for _, level := range ct.Columns {
				cells = append(cells, fmt.Sprintf("%*s", c.config.CountWidth, shorten(string(level), c.config.CountWidth)))
			}
			return "| " + strings.Join(cells, " | ") + " |"
		},
	}

	tmpl := `
Housing Satisfaction Report
Respondents: {{.Overview.TotalRows}}
Satisfied: {{pct .Overview.SatisfiedRate}}  Dissatisfied: {{pct .Overview.DissatisfiedRate}}
Income/satisfaction correlation: {{corr .Overview.IncomeCorrelation}}

=== Satisfaction by Housing Situation ===
{{crosstabHeader .SituationCrossTab}}
{{range .SituationCrossTab.RowKeys}}{{crosstabRow $.SituationCrossTab .}}
{{end}}
=== Satisfaction by Rent Burden (renters) ===
{{crosstabHeader .RentBurdenCrossTab}}
{{range .RentBurdenCrossTab.RowKeys}}{{crosstabRow $.RentBurdenCrossTab .}}
{{end}}
=== Reasons for Dissatisfaction ===
{{separator}}
{{formatRow "Reason" "Count" ""}}
{{separator}}
{{range .Reasons}}{{formatRow .Label .Count ""}}
{{end}}{{separator}}

=== Mean Satisfaction by Income Bracket ===
{{separator}}
{{formatRow "Bracket" "Mean" "N"}}
{{separator}}
{{range .IncomeGroups}}{{formatRow .Key (mean .Mean) .Count}}
{{end}}{{separator}}

=== Mean Satisfaction by Rent Burden ===
{{separator}}
{{formatRow "Bracket" "Mean" "N"}}
{{separator}}
{{range .RentBurdenGroups}}{{formatRow .Key (mean .Mean) .Count}}
{{end}}{{separator}}
{{if .RentBurdenExtremes.Highest}}Most satisfied bracket: {{.RentBurdenExtremes.Highest.Key}} ({{mean .RentBurdenExtremes.Highest.Mean}})
Least satisfied bracket: {{.RentBurdenExtremes.Lowest.Key}} ({{mean .RentBurdenExtremes.Lowest.Mean}})
{{end}}
=== Mean Signed Score by District ===
{{separator}}
{{formatRow "District" "Mean" "N"}}
{{separator}}
{{range .DistrictGroups}}{{formatRow .Key (mean .Mean) .Count}}
{{end}}{{separator}}
{{if .Districts}}
=== District Map Buckets ===
{{separator}}
{{formatRow "District" "Score" "Bucket"}}
{{separator}}
{{range .Districts.Entries}}{{formatRow .Name (score .Score) .Bucket.Key}}
{{end}}{{separator}}
{{if .Districts.Unmatched}}Unmatched survey districts: {{range .Districts.Unmatched}}{{.}} {{end}}
{{end}}{{end}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

func shorten(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width]
}
