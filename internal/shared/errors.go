package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Collection errors
	ErrValidation = fmt.Errorf("validation failed")
	ErrNotFound   = fmt.Errorf("item not found")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Catalog errors
	ErrCatalogUnavailable = fmt.Errorf("catalog unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
