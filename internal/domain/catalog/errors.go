package catalog

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrCatalogInvariant reports a catalog whose weight sums or structure
	// violate the rubric contract. The process must refuse to start on it.
	ErrCatalogInvariant = errors.New("catalog invariant violation")

	// ErrLoadCatalog reports a failure reading or parsing an external
	// catalog document.
	ErrLoadCatalog = errors.New("load catalog failed")
)
