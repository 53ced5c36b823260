package napt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

const triggerTemplate = `// Generated by napt. Do not edit.
package %s;

final class NaptTrigger {
}
`

// TriggerContent returns the source of a trigger declaring namespace.
// The output depends on namespace only.
func TriggerContent(namespace string) []byte {
	return fmt.Appendf(nil, triggerTemplate, namespace)
}

// WriteTrigger writes the trigger file, creating missing directories.
// The file is rewritten on every call.
func WriteTrigger(d Descriptor) error {
	if err := ensureDir(filepath.Dir(d.Path)); err != nil {
		return err
	}
	if info, err := os.Lstat(d.Path); err == nil && info.IsDir() {
		return isDirError(d.Path)
	}
	if err := os.WriteFile(d.Path, TriggerContent(d.Namespace), 0o644); err != nil {
		return fsError("write trigger", err)
	}
	return nil
}

// ensureDir creates dir and its parents. A non-directory anywhere on the
// chain is a configuration conflict.
func ensureDir(dir string) error {
walk:
	for p := dir; ; {
		info, err := os.Stat(p)
		switch {
		case err == nil && !info.IsDir():
			return notDirError(p)
		case err == nil:
			break walk
		case errors.Is(err, fs.ErrPermission):
			return fsError("stat", err)
		}
		parent := filepath.Dir(p)
		if parent == p {
			break
		}
		p = parent
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fsError("create trigger directory", err)
	}
	return nil
}

// RemoveTrigger deletes the trigger file if present, then removes the
// directories left empty between it and the source root.
// The source root itself and non-empty directories are kept. An empty
// package directory that existed before the trigger was written is removed too.
func RemoveTrigger(d Descriptor) error {
	info, err := os.Lstat(d.Path)
	switch {
	case isAbsent(err):
		return nil
	case err != nil:
		return fsError("stat trigger", err)
	case info.IsDir():
		return isDirError(d.Path)
	}
	if err := os.Remove(d.Path); err != nil && !isAbsent(err) {
		return fsError("remove trigger", err)
	}
	return pruneEmptyDirs(filepath.Dir(d.Path), d.SourceRoot)
}

// pruneEmptyDirs removes empty directories from dir upwards, stopping at the
// first non-empty one or at stop, which is never removed.
func pruneEmptyDirs(dir, stop string) error {
	dir, stop = filepath.Clean(dir), filepath.Clean(stop)
	rel, err := filepath.Rel(stop, dir)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}
	for dir != stop {
		entries, err := os.ReadDir(dir)
		switch {
		case isAbsent(err):
		case err != nil:
			return fsError("read directory", err)
		case len(entries) > 0:
			return nil
		default:
			if err := os.Remove(dir); err != nil && !isAbsent(err) {
				return fsError("remove directory", err)
			}
		}
		dir = filepath.Dir(dir)
	}
	return nil
}

func isAbsent(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
