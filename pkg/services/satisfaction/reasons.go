package satisfaction

import (
	"fmt"
	"sort"

	"github.com/ht-tools/housing-atlas/pkg/models/domain"
)

// ReasonEntry declares one known dissatisfaction indicator: its canonical
// column identifier and the human-readable label it renders as.
type ReasonEntry struct {
	ID    string
	Label string
}

// ReasonDictionary is the fixed, ordered set of known dissatisfaction
// indicators. Declaration order doubles as the tie-break order when two
// reasons carry equal counts, which keeps top-N extraction reproducible.
type ReasonDictionary struct {
	entries []ReasonEntry
	labels  map[string]string
}

// NewReasonDictionary validates the entries up front: IDs must be unique
// and neither ID nor label may be empty.
func NewReasonDictionary(entries []ReasonEntry) (ReasonDictionary, error) {
	labels := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.ID == "" || e.Label == "" {
			return ReasonDictionary{}, fmt.Errorf("reason entry %q: id and label are required", e.ID)
		}
		if _, exists := labels[e.ID]; exists {
			return ReasonDictionary{}, fmt.Errorf("reason entry %q declared twice", e.ID)
		}
		labels[e.ID] = e.Label
	}
	return ReasonDictionary{entries: entries, labels: labels}, nil
}

// DefaultReasonDictionary covers the ten indicators collected by the survey.
func DefaultReasonDictionary() ReasonDictionary {
	dict, err := NewReasonDictionary([]ReasonEntry{
		{ID: "reason_pago-demasiado", Label: "Paying too much"},
		{ID: "reason_falta-espaco", Label: "Lack of space"},
		{ID: "reason_habitacao-mau-estado", Label: "Poor housing condition"},
		{ID: "reason_vivo-longe", Label: "Living far from work/amenities"},
		{ID: "reason_quero-independecia", Label: "Want independence"},
		{ID: "reason_dificuldades-financeiras", Label: "Financial difficulties"},
		{ID: "reason_financeiramente-dependente", Label: "Financially dependent"},
		{ID: "reason_vivo-longe-de-transportes", Label: "Far from transportation"},
		{ID: "reason_vivo-zona-insegura", Label: "Living in unsafe area"},
		{ID: "reason_partilho-casa-com-desconhecidos", Label: "Sharing with strangers"},
	})
	if err != nil {
		panic(err)
	}
	return dict
}

func (d ReasonDictionary) IDs() []string {
	ids := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func (d ReasonDictionary) Label(id string) (string, bool) {
	label, ok := d.labels[id]
	return label, ok
}

// CountReasons sums the boolean indicators across all rows and returns the
// result ranked descending by count. Only indicators declared in the
// dictionary are counted; indicators absent from every row simply score
// zero. Ties keep dictionary declaration order.
func CountReasons(rows []domain.SurveyRow, dict ReasonDictionary) []domain.ReasonCount {
	counts := make([]domain.ReasonCount, 0, len(dict.entries))
	for _, e := range dict.entries {
		n := 0
		for _, row := range rows {
			if row.Reasons[e.ID] {
				n++
			}
		}
		counts = append(counts, domain.ReasonCount{ID: e.ID, Label: e.Label, Count: n})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// TopReasons returns the first n ranked reasons.
func TopReasons(counts []domain.ReasonCount, n int) []domain.ReasonCount {
	if n <= 0 || n >= len(counts) {
		return counts
	}
	return counts[:n]
}
