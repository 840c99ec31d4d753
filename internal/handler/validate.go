package handler

import (
	"errors"
	"strings"
)

// ValidateName checks a proposed snippet identifier before any file is
// written. Conflicts are only advisory here; Create re-checks atomically at
// write time.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("handler: snippet name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return errors.New("handler: snippet name cannot contain path separators")
	}
	if strings.HasPrefix(name, ".") {
		return errors.New("handler: snippet name cannot start with a dot")
	}
	return nil
}
