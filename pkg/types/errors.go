package types

import "errors"

// Store and history operation errors.
var (
	ErrOutOfRange   = errors.New("row or column index out of range")
	ErrCoerce       = errors.New("value cannot be coerced to column type")
	ErrHistoryIndex = errors.New("history index outside recorded range")
)

// Import/export errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyDataset      = errors.New("dataset has no columns")
	ErrRowWidth          = errors.New("row width does not match column count")
	ErrLoadInFlight      = errors.New("another load is already in progress")
)

// Config validation errors.
var (
	ErrAPIURLEmpty    = errors.New("api url must not be empty")
	ErrTimeoutInvalid = errors.New("api timeout must be positive")
)
