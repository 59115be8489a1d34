package tailwind

import (
	"fmt"
	"io/fs"

	"github.com/bmatcuk/doublestar/v4"
)

// CheckContent returns the content globs that match no file in fsys,
// which should be rooted at the project directory.
func (d Descriptor) CheckContent(fsys fs.FS) ([]string, error) {
	var unmatched []string
	for _, g := range d.Content {
		matches, err := doublestar.Glob(fsys, globPattern(g), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", g, err)
		}
		if len(matches) == 0 {
			unmatched = append(unmatched, g)
		}
	}
	return unmatched, nil
}
