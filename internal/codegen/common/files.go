package common

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DirPerm is used for all directories created by generators.
	DirPerm = 0o755
	// FilePerm is used for all files written by generators.
	FilePerm = 0o644
)

// WriteFileIfChanged writes content to path unless the file already holds
// exactly that content. It reports whether the file was (re)written, so
// unchanged outputs keep their mtime across runs.
func WriteFileIfChanged(path string, content []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, content) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return false, fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, FilePerm); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// WriteFileIfAbsent writes content to path only when no file exists there
// yet. Used for scaffolding files the user is expected to edit afterwards.
func WriteFileIfAbsent(path string, content []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return false, fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, FilePerm); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// EnsureSymlink creates a symlink at linkPath pointing to target. An
// existing symlink that already points to target is left alone; any other
// existing entry is an error rather than being replaced.
func EnsureSymlink(target, linkPath string) error {
	if existing, err := os.Readlink(linkPath); err == nil {
		if existing == target {
			return nil
		}
		return fmt.Errorf("symlink %s already points to %s", linkPath, existing)
	} else if !os.IsNotExist(err) {
		if _, statErr := os.Lstat(linkPath); statErr == nil {
			return fmt.Errorf("%s exists and is not a symlink", linkPath)
		}
	}
	if err := os.MkdirAll(filepath.Dir(linkPath), DirPerm); err != nil {
		return fmt.Errorf("create directory for %s: %w", linkPath, err)
	}
	if err := os.Symlink(target, linkPath); err != nil {
		return fmt.Errorf("link %s -> %s: %w", linkPath, target, err)
	}
	return nil
}
