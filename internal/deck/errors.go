package deck

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every DomainError via errors.Is.
var ErrDomain = errors.New("domain error")

// DomainError reports a count or lookup outside the valid range, such as a
// piece-set count above five or a hand key with an unknown symbol. These are
// contract violations: the enumerator never produces such inputs.
type DomainError struct {
	Op     string
	Value  string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrDomain) match any DomainError.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}
