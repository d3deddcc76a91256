package organizer

import (
	"fmt"
	"path/filepath"
	"strings"

	"aniorg/internal/naming"
	"aniorg/internal/services"
)

// DestinationPath returns root/<series>/<episode> <tags><ext>. The publisher
// is not part of the result.
func DestinationPath(rec naming.EpisodeFile, root string) string {
	return filepath.Join(root, rec.Series, rec.FileName())
}

// validateDestination rejects series names that would climb out of the
// target root or collapse into it, such as "." and "..".
func validateDestination(rec naming.EpisodeFile, root, dest string) error {
	series := strings.TrimSpace(rec.Series)
	if series == "." || series == ".." {
		return services.Wrap(
			services.ErrValidation,
			"organizer",
			"validate destination",
			fmt.Sprintf("series name %q cannot be used as a directory", rec.Series),
			nil,
		)
	}
	rel, err := filepath.Rel(root, dest)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return services.Wrap(
			services.ErrValidation,
			"organizer",
			"validate destination",
			fmt.Sprintf("destination %q escapes target %q", dest, root),
			err,
		)
	}
	return nil
}
