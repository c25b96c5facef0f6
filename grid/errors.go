package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrConfiguration is wrapped by every error New and Parse return.
	ErrConfiguration = errors.New("grid: configuration error")
	// ErrEmptyGrid indicates the layout has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrConfiguration)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrConfiguration)
	// ErrUnknownSymbol indicates a row contains a character that is not a cell symbol.
	ErrUnknownSymbol = fmt.Errorf("%w: unknown cell symbol", ErrConfiguration)
	// ErrNoStart indicates the layout has no Start cell.
	ErrNoStart = fmt.Errorf("%w: no start cell", ErrConfiguration)
	// ErrMultipleStart indicates the layout has more than one Start cell.
	ErrMultipleStart = fmt.Errorf("%w: more than one start cell", ErrConfiguration)
	// ErrNoTarget indicates the layout has no Target cell.
	ErrNoTarget = fmt.Errorf("%w: no target cell", ErrConfiguration)
	// ErrMultipleTarget indicates the layout has more than one Target cell.
	ErrMultipleTarget = fmt.Errorf("%w: more than one target cell", ErrConfiguration)

	// ErrOutOfBounds indicates a query outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
