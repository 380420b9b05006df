package util

import "time"

// EpochToISO converts upstream epoch seconds to an ISO-8601 UTC timestamp.
func EpochToISO(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
