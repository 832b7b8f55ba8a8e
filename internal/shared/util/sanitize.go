package util

import (
	"errors"
	"strings"
)

// SanitizeName normalizes a user-chosen resume name into a storage-safe
// key segment. Path separators and traversal patterns are rejected rather
// than rewritten so the stored name always matches what the user typed.
func SanitizeName(name string) (string, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return "", errors.New("invalid name")
	}
	if strings.Contains(s, "..") || strings.ContainsAny(s, "/\\") {
		return "", errors.New("invalid name")
	}
	return s, nil
}
