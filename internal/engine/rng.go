package engine

import "math"

// DefaultDayKey is the fixed calendar-day string mixed into every seed. Keeping it
// fixed makes prices stable across days; callers opt into daily rotation explicitly.
const DefaultDayKey = "2025-08-07"

// Seed derives a stable non-negative seed from the day key, the route, the cabin
// class label and optional discriminators, using a 32-bit polynomial rolling hash.
func Seed(dayKey, origin, destination, classLabel string, discriminators ...string) int64 {
	var h int32
	mix := func(s string) {
		for _, r := range s {
			h = h*31 + int32(r)
		}
	}

	mix(dayKey)
	mix(origin)
	mix(destination)
	mix(classLabel)
	for _, d := range discriminators {
		mix(d)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// Stream is a reproducible sequence of floats in [0,1).
// A Stream is not safe for concurrent use; every query owns its own.
type Stream struct {
	state float64
	draws int
}

// NewStream starts a stream at seed.
func NewStream(seed int64) *Stream {
	return &Stream{state: float64(seed)}
}

// Next returns the next float in [0,1).
func (s *Stream) Next() float64 {
	x := math.Sin(s.state) * 10000
	s.state++
	s.draws++

	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}

// Intn returns an int in [0,n). It returns 0 without drawing when n <= 1.
func (s *Stream) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	i := int(s.Next() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Between returns a float in [lo,hi).
func (s *Stream) Between(lo, hi float64) float64 {
	return lo + s.Next()*(hi-lo)
}

// Draws reports how many values have been consumed.
func (s *Stream) Draws() int {
	return s.draws
}
