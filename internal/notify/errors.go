package notify

import "errors"

// ErrTransport reports a failed outbound delivery: network error, timeout,
// or a non-2xx response from the messaging API.
var ErrTransport = errors.New("notification transport failed")
