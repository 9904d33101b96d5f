package importer

import "time"

type systemClock struct{}

// Now returns current UTC time.
func (c systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Since returns time elapsed from t.
func (c systemClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
