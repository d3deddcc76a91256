package workflow

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"aniorg/internal/services"
	"aniorg/internal/textutil"
)

// LockPath returns the lock file guarding target inside stateDir.
func LockPath(stateDir, target string) string {
	return filepath.Join(stateDir, "organize-"+textutil.PathToken(target)+".lock")
}

// acquireLock takes the per-target lock without blocking. The returned
// function releases it.
func acquireLock(stateDir, target string) (func() error, string, error) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, "", services.Wrap(services.ErrDirectoryCreation, "workflow", "ensure state dir", stateDir, err)
	}
	path := LockPath(stateDir, target)
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, path, services.Wrap(services.ErrConfiguration, "workflow", "acquire lock", path, err)
	}
	if !ok {
		return nil, path, services.Wrap(
			services.ErrConfiguration,
			"workflow",
			"acquire lock",
			fmt.Sprintf("another run is organizing %s", target),
			nil,
		)
	}
	return lock.Unlock, path, nil
}
