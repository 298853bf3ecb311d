package pricing

import "time"

// Clock supplies the wall-clock time and resolves timezone names, so the
// after-hours resolver can be driven deterministically.
type Clock interface {
	Now() time.Time
	Location(name string) (*time.Location, error)
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) Location(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}
