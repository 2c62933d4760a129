package mapping

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rtac-writer/internal/match"
)

// DiscoverDeviceFiles lists the IED map files in dir: regular files whose
// name contains the marker and ends with the extension, both compared
// case-insensitively. Office lock files ("~$...") are ignored. The result
// is sorted by file name.
func DiscoverDeviceFiles(dir string, files DeviceFiles) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading device directory %s: %w", dir, err)
	}

	marker := match.Fold(files.Marker)
	ext := match.Fold(files.Extension)

	var paths []string

	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}

		name := e.Name()
		if strings.HasPrefix(name, "~$") {
			continue
		}

		folded := match.Fold(name)
		if !strings.Contains(folded, marker) || !strings.HasSuffix(folded, ext) {
			continue
		}

		paths = append(paths, filepath.Join(dir, name))
	}

	return paths, nil
}
