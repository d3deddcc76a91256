package workflow

import "fmt"

// Failure describes one file that could not be placed.
type Failure struct {
	Path        string
	Destination string
	Kind        string
	Err         error
}

// Summary counts the outcome of a run. Total covers files whose names
// parsed; Skipped counts media files that did not match the convention.
type Summary struct {
	RunID     string
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
	Failures  []Failure
}

// String renders the one-line summary printed at the end of a run.
func (s Summary) String() string {
	line := fmt.Sprintf("total %d, succeeded %d, failed %d", s.Total, s.Succeeded, s.Failed)
	if s.Skipped > 0 {
		line += fmt.Sprintf(", skipped %d", s.Skipped)
	}
	return line
}
