package common

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	resolvedOutputDir string
	pathsOnce         sync.Once
	pathsError        error
)

// RepoMarkerFiles are files that indicate the root of this module's
// repository, used to anchor a relative output directory regardless of the
// working directory a command is invoked from.
var RepoMarkerFiles = []string{"go.mod"}

// initPaths resolves the output directory once, relative to the repo root.
func initPaths() {
	pathsOnce.Do(func() {
		repoRoot, err := findRepoRoot()
		if err != nil {
			pathsError = err
			return
		}

		resolvedOutputDir = filepath.Join(repoRoot, "out")
		Verbose("Resolved repo root: %s", repoRoot)
		Verbose("Output directory: %s", resolvedOutputDir)
	})
}

// findRepoRoot searches for the repository root by looking for marker files
// starting from the current directory and walking up the directory tree.
func findRepoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for i := 0; i < 6; i++ {
		if isRepoRoot(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find repo root (looked for %v starting from %s)", RepoMarkerFiles, cwd)
}

// isRepoRoot checks if a directory contains repo marker files.
func isRepoRoot(dir string) bool {
	for _, marker := range RepoMarkerFiles {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// OutputDir returns the absolute path to the directory run dumps are
// written under and render reads from, creating it if necessary.
func OutputDir() (string, error) {
	initPaths()
	if pathsError != nil {
		return "", pathsError
	}
	if err := os.MkdirAll(resolvedOutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return resolvedOutputDir, nil
}

// DumpFilePath returns the absolute path a run's JSON grid dump should be
// written to, given a name such as a seed or attempt index.
func DumpFilePath(name string) (string, error) {
	dir, err := OutputDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fmt.Sprintf("%s.json", name)), nil
}

// MustOutputDir returns the output directory path or panics if it cannot be
// resolved. Use sparingly - prefer OutputDir() with proper error handling.
func MustOutputDir() string {
	dir, err := OutputDir()
	if err != nil {
		panic(fmt.Sprintf("failed to resolve output directory: %v", err))
	}
	return dir
}

// ResetPaths resets the cached paths (useful for testing).
func ResetPaths() {
	resolvedOutputDir = ""
	pathsOnce = sync.Once{}
	pathsError = nil
}
