package hull

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Lexicographic ordering used to break ties between points sharing an X
// value.
func (p Point) Less(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func sqr(v int64) int64 {
	return v * v
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
