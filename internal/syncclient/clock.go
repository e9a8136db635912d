package syncclient

import "time"

// Skew is how far the server clock runs ahead of the local one. It is
// measured once per fetch of the public view.
func Skew(serverNow, clientNow time.Time) time.Duration {
	return serverNow.Sub(clientNow)
}

// Remaining is the countdown to startAt on the server clock. It never goes
// below zero.
func Remaining(startAt, clientNow time.Time, skew time.Duration) time.Duration {
	return max(startAt.Sub(clientNow.Add(skew)), 0)
}
