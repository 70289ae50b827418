package valuation

import (
	"fmt"
	"strings"

	"github.com/lox/choker/internal/hand"
)

// Stage is one of the reveal points of a round.
type Stage int

const (
	Flop Stage = iota
	PreTurn
	Turn
	River
)

// Stages lists every stage in reveal order.
var Stages = []Stage{Flop, PreTurn, Turn, River}

// flopSize is the number of cards held at the flop; each later stage adds one.
const flopSize = 2

// riverExclusions are never enumerated at the river.
var riverExclusions = []hand.Hand{hand.MustParse("QQQQQ")}

// String returns the stage name
func (s Stage) String() string {
	switch s {
	case Flop:
		return "flop"
	case PreTurn:
		return "pre-turn"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	return s >= Flop && s <= River
}

// Size returns the number of cards held at the stage.
func (s Stage) Size() int {
	return flopSize + int(s)
}

// Terminal reports whether s is the last stage.
func (s Stage) Terminal() bool {
	return s == River
}

// Next returns the following stage. It returns false at the river.
func (s Stage) Next() (Stage, bool) {
	if s.Terminal() || !s.Valid() {
		return s, false
	}
	return s + 1, true
}

// Exclusions returns hands that are dropped from the stage's enumeration.
func (s Stage) Exclusions() []hand.Hand {
	if s == River {
		return riverExclusions
	}
	return nil
}

// StageForSize returns the stage at which a hand holds n cards.
func StageForSize(n int) (Stage, bool) {
	s := Stage(n - flopSize)
	return s, s.Valid()
}

// ParseStage parses a stage name such as "flop" or "pre-turn".
func ParseStage(name string) (Stage, error) {
	norm := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(name))
	for _, s := range Stages {
		if strings.ReplaceAll(s.String(), "-", "") == norm {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown stage %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Stage) UnmarshalText(b []byte) error {
	parsed, err := ParseStage(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
