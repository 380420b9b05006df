package repository

import (
	"errors"
	"fmt"
)

// ErrUpstreamTimeout marks a market-data fetch that exceeded its fixed
// timeout. The API layer surfaces it as 408.
var ErrUpstreamTimeout = errors.New("upstream request timed out")

// UpstreamStatusError is a non-2xx reply from a required upstream. The API
// layer surfaces the carried status code to the caller.
type UpstreamStatusError struct {
	Provider string
	Status   int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Provider, e.Status)
}
