package rating

import "errors"

// ErrInvalidRating reports a rating outside the 1..5 range or an unknown
// namespace. The store never clamps; the entry is rejected as-is.
var ErrInvalidRating = errors.New("invalid rating")
