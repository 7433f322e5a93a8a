package pkg

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// ErrNoMakefile is returned by FindMakefile if neither dir nor any of its parents contain a Makefile
var ErrNoMakefile = eris.New("no Makefile found")

// makefileNames lists the names GNU make looks for, in the same order
var makefileNames = []string{"GNUmakefile", "makefile", "Makefile"}

// FindMakefile searches dir and its parents for the closest Makefile and returns its path
func FindMakefile(dir string) (string, error) {
	path, err := filepath.Abs(dir)
	if err != nil {
		return "", eris.Wrapf(err, "failed to resolve %s", dir)
	}

	for {
		for _, name := range makefileNames {
			candidate := filepath.Join(path, name)
			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				return candidate, nil
			}

			if err != nil && !eris.Is(err, os.ErrNotExist) {
				return "", eris.Wrapf(err, "failed to check %s", candidate)
			}
		}

		parent := filepath.Dir(path)
		if parent == path {
			break
		}
		path = parent
	}

	return "", ErrNoMakefile
}
