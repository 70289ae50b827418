package deck

import (
	"fmt"
	"sort"
	"strings"
)

// Ordering is a total order over pieces used to build canonical hand keys.
// One ordering is selected per run; the zero value behaves like RankOrder.
type Ordering struct {
	name     string
	sequence [NumPieces]Piece // lowest first
	pos      [NumPieces]int
}

var (
	// RankOrder sorts P < N < B < R < Q.
	RankOrder = orderingFromSequence("rank", Pawn, Knight, Bishop, Rook, Queen)

	// ValueOrder sorts by base value, breaking ties on the symbol code.
	ValueOrder = orderingByKey("value", func(p Piece) float64 {
		return p.Value() + float64(p.Symbol())/100
	})

	// AlphaOrder sorts by symbol: B < N < P < Q < R.
	AlphaOrder = orderingByKey("alpha", func(p Piece) float64 {
		return float64(p.Symbol())
	})
)

var orderings = map[string]Ordering{
	RankOrder.name:  RankOrder,
	ValueOrder.name: ValueOrder,
	AlphaOrder.name: AlphaOrder,
}

// OrderingNames lists the names accepted by ParseOrdering.
func OrderingNames() []string {
	names := make([]string, 0, len(orderings))
	for name := range orderings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseOrdering returns the ordering registered under name.
func ParseOrdering(name string) (Ordering, error) {
	o, ok := orderings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Ordering{}, fmt.Errorf("unknown ordering %q (want one of %s)", name, strings.Join(OrderingNames(), ", "))
	}
	return o, nil
}

func orderingFromSequence(name string, seq ...Piece) Ordering {
	o := Ordering{name: name}
	for i, p := range seq {
		o.sequence[i] = p
		o.pos[p] = i
	}
	return o
}

func orderingByKey(name string, key func(Piece) float64) Ordering {
	seq := AllPieces
	sort.SliceStable(seq[:], func(i, j int) bool {
		return key(seq[i]) < key(seq[j])
	})
	return orderingFromSequence(name, seq[:]...)
}

func (o Ordering) resolved() Ordering {
	if o.name == "" {
		return RankOrder
	}
	return o
}

// Name returns the registered name of the ordering
func (o Ordering) Name() string {
	return o.resolved().name
}

// Position returns the zero-based place of p in the ordering.
func (o Ordering) Position(p Piece) int {
	if !p.Valid() {
		return -1
	}
	return o.resolved().pos[p]
}

// Less reports whether a sorts before b.
func (o Ordering) Less(a, b Piece) bool {
	return o.Position(a) < o.Position(b)
}

// Pieces returns all pieces from lowest to highest in this ordering.
func (o Ordering) Pieces() [NumPieces]Piece {
	return o.resolved().sequence
}

func (o Ordering) String() string {
	var sb strings.Builder
	for _, p := range o.Pieces() {
		sb.WriteByte(p.Symbol())
	}
	return o.Name() + "(" + sb.String() + ")"
}
