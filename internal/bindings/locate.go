package bindings

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
)

// LocateCoreLibrary searches dir for the mc_core shared library and returns
// the absolute path of the best candidate. File names must start with
// "mc_core" or "libmc_core" followed directly by the platform suffix;
// versioned names such as libmc_core.so.6 also match. When several files
// match, the largest one wins, with lexicographic path order as the
// tie-break. The search has no side effects.
func LocateCoreLibrary(dir string) (string, error) {
	return locateCoreLibrary(dir, runtime.GOOS)
}

func locateCoreLibrary(dir, goos string) (string, error) {
	suffix, err := sharedLibrarySuffix(goos)
	if err != nil {
		return "", err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read application directory %q: %w", dir, err)
	}

	type candidate struct {
		path string
		size int64
	}
	var candidates []candidate

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !matchesCoreLibrary(entry.Name(), suffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{path: abs, size: info.Size()})
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("could not find %s library file in %q", coreLibraryBaseName, dir)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].size != candidates[j].size {
			return candidates[i].size > candidates[j].size
		}
		return candidates[i].path < candidates[j].path
	})
	return candidates[0].path, nil
}

// matchesCoreLibrary reports whether name is a plausible mc_core file name
// for the given suffix: an optional "lib" prefix, the base name, the suffix,
// then anything (version tags).
func matchesCoreLibrary(name, suffix string) bool {
	for _, prefix := range []string{"", "lib"} {
		ok, err := filepath.Match(prefix+coreLibraryBaseName+suffix+"*", name)
		if err == nil && ok {
			return true
		}
	}
	return false
}

func sharedLibrarySuffix(goos string) (string, error) {
	switch goos {
	case "windows":
		return ".dll", nil
	case "darwin":
		return ".dylib", nil
	case "linux":
		return ".so", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}
