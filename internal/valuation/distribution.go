package valuation

import (
	"fmt"
	"sort"
	"strings"
)

// Field selects a value column of a table.
type Field int

const (
	FieldActual Field = iota
	FieldPotential
)

// String returns the column name
func (f Field) String() string {
	switch f {
	case FieldActual:
		return "actual"
	case FieldPotential:
		return "potential"
	default:
		return "unknown"
	}
}

// ParseField parses "actual" or "potential".
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "actual":
		return FieldActual, nil
	case "potential":
		return FieldPotential, nil
	default:
		return 0, fmt.Errorf("unknown field %q (want actual or potential)", name)
	}
}

func (f Field) of(r Record) float64 {
	if f == FieldPotential {
		return r.Potential
	}
	return r.Actual
}

// Bucket counts the hands that share one value.
type Bucket struct {
	Value float64 `json:"value" yaml:"value"`
	Count int     `json:"count" yaml:"count"`
}

// Distribution counts how many hands of t hold each distinct value of the
// field, lowest value first.
func Distribution(t *Table, f Field) []Bucket {
	counts := make(map[float64]int)
	for _, r := range t.records {
		counts[f.of(r)]++
	}

	buckets := make([]Bucket, 0, len(counts))
	for v, n := range counts {
		buckets = append(buckets, Bucket{Value: v, Count: n})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Value < buckets[j].Value
	})
	return buckets
}
