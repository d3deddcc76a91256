package preflight

import (
	"fmt"
	"os"
	"runtime"

	"aniorg/internal/config"
	"aniorg/internal/deps"
	"aniorg/internal/naming"
	"aniorg/internal/scan"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks relevant to cfg's mode.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	source := cfg.Organize.Source
	target := cfg.TargetDir()

	var results []Result
	if cfg.Organize.Mode == "move" {
		results = append(results, CheckDirectoryAccess("Source directory", source))
	} else {
		results = append(results, CheckReadableDirectory("Source directory", source))
	}
	results = append(results, CheckSourceMedia(source, cfg.Organize.IncludeExtensions))
	results = append(results, CheckDirectoryAccess("Target directory", target))

	same := CheckSameFilesystem(source, target)
	if cfg.Organize.Mode != "link" {
		// Informational outside link mode.
		same.Passed = true
	}
	results = append(results, same)

	if cfg.Organize.Mode == "link" && runtime.GOOS != "windows" {
		results = append(results, CheckLinkFallback())
	}
	if cfg.Paths.StateDir != "" {
		results = append(results, CheckDirectoryAccess("State directory", cfg.Paths.StateDir))
	}
	return results
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	return checkDirectory(name, path, true)
}

// CheckReadableDirectory verifies that the directory exists and can be listed.
func CheckReadableDirectory(name, path string) Result {
	return checkDirectory(name, path, false)
}

func checkDirectory(name, path string, writable bool) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := checkAccess(path, writable); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	if writable {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// CheckSourceMedia counts the media files under source and how many of them
// follow the naming convention. An empty source still passes.
func CheckSourceMedia(source string, extensions []string) Result {
	const name = "Source media"
	files, err := scan.MediaFiles(source, extensions)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("scan failed: %v", err)}
	}
	matched := 0
	for _, path := range files {
		if _, ok := naming.Parse(path); ok {
			matched++
		}
	}
	return Result{
		Name:   name,
		Passed: true,
		Detail: fmt.Sprintf("%d media file(s), %d match the naming convention", len(files), matched),
	}
}

// CheckSameFilesystem reports whether source and target share a filesystem,
// which hard links require.
func CheckSameFilesystem(source, target string) Result {
	const name = "Same filesystem"
	same, err := SameFilesystem(source, target)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("unknown (%v)", err)}
	}
	if !same {
		return Result{Name: name, Detail: "source and target are on different filesystems; link mode will fail"}
	}
	return Result{Name: name, Passed: true, Detail: "hard links possible"}
}

// CheckLinkFallback reports whether the external ln command is available as
// the last hard-link strategy.
func CheckLinkFallback() Result {
	const name = "ln fallback"
	status := deps.CheckBinaries([]deps.Requirement{{
		Name:        name,
		Command:     "ln",
		Description: "Used when link(2) is unsupported",
		Optional:    true,
	}})[0]
	if !status.Available {
		return Result{Name: name, Passed: true, Detail: status.Detail + " (optional)"}
	}
	return Result{Name: name, Passed: true, Detail: "available"}
}
