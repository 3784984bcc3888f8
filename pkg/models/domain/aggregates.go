package domain

// CrossTab is a frequency table of one categorical dimension against
// satisfaction level. Both axes keep their insertion order: RowKeys in
// first-seen order, Columns in the order the caller requested.
type CrossTab struct {
	Dimension string
	RowKeys   []string
	Columns   []SatisfactionLevel
	counts    map[string]map[SatisfactionLevel]int
}

func NewCrossTab(dimension string, columns []SatisfactionLevel) CrossTab {
	return CrossTab{
		Dimension: dimension,
		Columns:   columns,
		counts:    map[string]map[SatisfactionLevel]int{},
	}
}

func (ct *CrossTab) Increment(rowKey string, level SatisfactionLevel) {
	cells, ok := ct.counts[rowKey]
	if !ok {
		cells = map[SatisfactionLevel]int{}
		ct.counts[rowKey] = cells
		ct.RowKeys = append(ct.RowKeys, rowKey)
	}
	cells[level]++
}

func (ct CrossTab) Count(rowKey string, level SatisfactionLevel) int {
	return ct.counts[rowKey][level]
}

func (ct CrossTab) RowTotal(rowKey string) int {
	total := 0
	for _, level := range ct.Columns {
		total += ct.counts[rowKey][level]
	}
	return total
}

// Total is the number of rows that contributed a cell, i.e. rows where both
// the dimension value and the satisfaction label were known.
func (ct CrossTab) Total() int {
	total := 0
	for _, key := range ct.RowKeys {
		total += ct.RowTotal(key)
	}
	return total
}

func (ct CrossTab) Empty() bool {
	return len(ct.RowKeys) == 0
}

// ReasonCount is one entry of the ranked dissatisfaction-reason table.
type ReasonCount struct {
	ID    string
	Label string
	Count int
}

// GroupStat is the mean/count pair for one group key. Mean is nil when no
// row in the group carried a defined numeric value; it is never zero-filled.
type GroupStat struct {
	Key   string
	Mean  *float64
	Count int
}

// GroupSummary is an ordered set of group statistics. Order is either the
// caller-supplied category order or first-seen order.
type GroupSummary []GroupStat

func (gs GroupSummary) Get(key string) (GroupStat, bool) {
	for _, stat := range gs {
		if stat.Key == key {
			return stat, true
		}
	}
	return GroupStat{}, false
}
