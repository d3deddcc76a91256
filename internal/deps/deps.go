// Package deps reports whether optional external commands are installed.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external command aniorg can use.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Requirement
	Available bool
	// Path is the resolved executable when Available.
	Path   string
	Detail string
}

// CheckBinaries resolves each requirement on PATH.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		req.Command = strings.TrimSpace(req.Command)
		req.Description = strings.TrimSpace(req.Description)
		status := Status{Requirement: req}
		switch path, err := exec.LookPath(req.Command); {
		case req.Command == "":
			status.Detail = "command not configured"
		case err != nil:
			status.Detail = fmt.Sprintf("binary %q not found", req.Command)
		default:
			status.Available = true
			status.Path = path
		}
		results = append(results, status)
	}
	return results
}
