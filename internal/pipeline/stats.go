package pipeline

// RunStats tracks aggregate counters across a batch probe run.
type RunStats struct {
	Total       int
	Current     int
	Available   int
	Unavailable int
}

// AllAvailable reports whether every completed probe found its capability.
func (s *RunStats) AllAvailable() bool {
	return s.Unavailable == 0 && s.Available == s.Total
}
