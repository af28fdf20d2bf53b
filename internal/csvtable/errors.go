package csvtable

import "errors"

var (
	// ErrMalformed is returned when a quoted cell is left unterminated at end of input.
	ErrMalformed = errors.New("malformed CSV: unterminated quoted cell")

	// ErrEmpty is returned when the input contains no rows at all.
	ErrEmpty = errors.New("CSV file is empty")

	// ErrNoUsableColumns is returned when every header trims to an empty string.
	ErrNoUsableColumns = errors.New("CSV has no usable columns")
)
