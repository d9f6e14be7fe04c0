package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem locations the application works from.
// All relative configuration is resolved against the executable directory,
// never the current working directory.
type Paths struct {
	ExecutableDir string
	LibraryRoot   string
	LogsDir       string
}

// GetPaths returns the application paths relative to the executable location
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	exeDir := filepath.Dir(exe)

	return &Paths{
		ExecutableDir: exeDir,
		LibraryRoot:   filepath.Join(exeDir, "library"),
		LogsDir:       filepath.Join(exeDir, "logs"),
	}, nil
}

// GetRelativePath returns a path relative to the executable directory
func (p *Paths) GetRelativePath(subpath string) string {
	return filepath.Join(p.ExecutableDir, subpath)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
