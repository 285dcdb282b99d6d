package table

import "fmt"

// Reason identifies which format rule a row violated.
type Reason string

const (
	ReasonEmptyRow         Reason = "empty row"
	ReasonWrongStructure   Reason = "wrong structure"
	ReasonExtraColumn      Reason = "extra column"
	ReasonEmptyExtraColumn Reason = "empty extra column"
	ReasonNonInteger       Reason = "non-integer score"
	ReasonUnreadable       Reason = "unreadable input"
)

// SyntaxError describes the first invalid row of a database file.
type SyntaxError struct {
	Line   int
	Reason Reason
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Is makes every SyntaxError match ErrMalformed.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrMalformed
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
