package utils

import "time"

// GetCurrentTime is the UTC clock used for report timestamps.
func GetCurrentTime() time.Time {
	return time.Now().UTC()
}
