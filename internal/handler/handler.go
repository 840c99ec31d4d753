// Package handler performs the file-level mutations behind snippet actions:
// creating snippet files and moving them to a recoverable trash location.
package handler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/snipstash/snip/internal/constants"
)

var (
	// ErrNameConflict signals that a snippet with the requested name
	// already exists.
	ErrNameConflict = errors.New("handler: snippet already exists")

	// ErrNotFound signals that the requested snippet file is absent.
	ErrNotFound = errors.New("handler: snippet not found")

	// ErrTrash signals that the snippet could not be moved to the trash
	// location. The file is left in place; there is no hard-delete
	// fallback.
	ErrTrash = errors.New("handler: trash failed")
)

// FileHandler mutates the snippet directory. All paths it produces stay
// inside that directory.
type FileHandler struct {
	dir string
	ext string
}

func NewFileHandler(dir, ext string) *FileHandler {
	return &FileHandler{dir: filepath.Clean(dir), ext: ext}
}

// Dir returns the snippet directory root.
func (h *FileHandler) Dir() string {
	return h.dir
}

// Path returns the on-disk path for a snippet identifier.
func (h *FileHandler) Path(name string) string {
	return filepath.Join(h.dir, name+h.ext)
}

// Exists reports whether a snippet file with the given identifier exists.
func (h *FileHandler) Exists(name string) (bool, error) {
	_, err := os.Stat(h.Path(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Create writes a new snippet file and returns its path. The exclusive-create
// flag re-checks the name at write time, closing the race between validation
// and creation.
func (h *FileHandler) Create(name, content string) (string, error) {
	path := h.Path(name)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrNameConflict, name)
		}
		return "", fmt.Errorf("create snippet %s: %w", name, err)
	}

	if _, err := file.WriteString(content); err != nil {
		file.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write snippet %s: %w", name, err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write snippet %s: %w", name, err)
	}

	return path, nil
}

// Trash moves a snippet file into the trash subdirectory and returns the new
// location. The move is a rename; when it cannot be performed the snippet is
// reported via ErrTrash and left untouched.
func (h *FileHandler) Trash(name string) (string, error) {
	path := h.Path(name)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", err
	}

	trashDir := filepath.Join(h.dir, constants.TrashDir)
	if err := os.MkdirAll(trashDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTrash, err)
	}

	target := filepath.Join(trashDir, filepath.Base(path))
	if _, err := os.Stat(target); err == nil {
		// An earlier trashed copy holds this name. Move it aside so the
		// newest copy sits at the name Untrash looks for and nothing is
		// overwritten.
		if err := stashAside(target); err != nil {
			return "", fmt.Errorf("%w: %v", ErrTrash, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %v", ErrTrash, err)
	}

	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTrash, err)
	}

	return target, nil
}

func stashAside(target string) error {
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%d", target, i)
		if _, err := os.Stat(candidate); errors.Is(err, fs.ErrNotExist) {
			return os.Rename(target, candidate)
		} else if err != nil {
			return err
		}
	}
}

// Untrash restores a previously trashed snippet file to the snippet
// directory.
func (h *FileHandler) Untrash(name string) (string, error) {
	trashed := filepath.Join(h.dir, constants.TrashDir, name+h.ext)
	if _, err := os.Stat(trashed); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", err
	}

	target := h.Path(name)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("%w: %s", ErrNameConflict, name)
	}

	if err := os.Rename(trashed, target); err != nil {
		return "", err
	}

	return target, nil
}
