package vector

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ErrDimensionMismatch is the sentinel matched by every DimensionError.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// DimensionError reports operands of incompatible size.
type DimensionError struct {
	Op    string // Operation that was attempted (e.g., "dot", "sub")
	Left  int    // Dimension of the receiver or first operand
	Right int    // Dimension of the offending operand
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s: %d vs %d", e.Op, ErrDimensionMismatch, e.Left, e.Right)
}

// Unwrap lets errors.Is match ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

// mustMatch panics with a *DimensionError when n != m.
func mustMatch(op string, n, m int) {
	if n != m {
		panic(&DimensionError{Op: op, Left: n, Right: m})
	}
}

// CheckDims verifies that every operand implementing Lener has the same
// dimension as the first such operand. Operands without Len and nil
// pointers are skipped; a strategy that reads a nil operand still fails
// inside the capability call.
//
// All mismatches are reported, not only the first.
func CheckDims(operands ...any) error {
	var result *multierror.Error
	want := -1
	for i, op := range operands {
		l, ok := op.(Lener)
		if !ok || isNilPointer(op) {
			continue
		}
		n := l.Len()
		if want < 0 {
			want = n
			continue
		}
		if n != want {
			result = multierror.Append(result, errors.WithStack(&DimensionError{
				Op:    fmt.Sprintf("operand %d", i),
				Left:  want,
				Right: n,
			}))
		}
	}
	return result.ErrorOrNil()
}

func isNilPointer(op any) bool {
	v := reflect.ValueOf(op)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
