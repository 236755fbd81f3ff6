// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"strings"
)

// OrderingError reports an ordering that cannot be used to build a formula:
// either it is not a list of distinct names, or it does not include all the
// variables needed to decide the formula. In the latter case Residual lists
// the free variables left when the ordering was exhausted.
type OrderingError struct {
	Msg      string
	Residual []string
}

func (e *OrderingError) Error() string {
	if len(e.Residual) == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s (unresolved: %s)", e.Msg, strings.Join(e.Residual, ", "))
}

func (e *OrderingError) Unwrap() error {
	return ErrOrdering
}

func orderingerror(format string, a ...interface{}) error {
	return &OrderingError{Msg: fmt.Sprintf(format, a...)}
}

// seterror wraps one of the sentinel errors with some context.
func seterror(sentinel error, format string, a ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, a...), sentinel)
}
