package valuation

import (
	"sort"
)

// Record is the valuation of one canonical hand at one stage.
type Record struct {
	Hand        string  `json:"hand" yaml:"hand"`
	Actual      float64 `json:"actual" yaml:"actual"`
	Potential   float64 `json:"potential" yaml:"potential"`
	Probability float64 `json:"probability" yaml:"probability"`
}

// Table maps every canonical hand of a stage to its record. Records are kept
// sorted by (potential, actual, probability, hand). A Table is never modified
// after it is built.
type Table struct {
	stage   Stage
	records []Record
	index   map[string]int
}

// NewTable sorts records and indexes them by hand key.
func NewTable(stage Stage, records []Record) *Table {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return recordLess(sorted[i], sorted[j])
	})

	index := make(map[string]int, len(sorted))
	for i, r := range sorted {
		index[r.Hand] = i
	}
	return &Table{stage: stage, records: sorted, index: index}
}

func recordLess(a, b Record) bool {
	if a.Potential != b.Potential {
		return a.Potential < b.Potential
	}
	if a.Actual != b.Actual {
		return a.Actual < b.Actual
	}
	if a.Probability != b.Probability {
		return a.Probability < b.Probability
	}
	return a.Hand < b.Hand
}

// Stage returns the stage the table was built for
func (t *Table) Stage() Stage {
	return t.stage
}

// Len returns the number of hands in the table.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a copy of the records in table order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Keys returns the hand keys in table order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.records))
	for i, r := range t.records {
		keys[i] = r.Hand
	}
	return keys
}

// Lookup returns the record for a canonical hand key.
func (t *Table) Lookup(key string) (Record, bool) {
	i, ok := t.index[key]
	if !ok {
		return Record{}, false
	}
	return t.records[i], true
}

// TotalProbability sums the probability column.
func (t *Table) TotalProbability() float64 {
	total := 0.0
	for _, r := range t.records {
		total += r.Probability
	}
	return total
}
