package snesmap

import (
	"path/filepath"
	"strings"
)

func sanitizeRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		return r
	default:
		return '_'
	}
}

// SanitizeName replaces every character that isn't a letter, digit, '-' or
// '_' with '_' so the result can be used as an assembler label.
func SanitizeName(name string) string {
	return strings.Map(sanitizeRune, name)
}

// BaseName returns the sanitized file name of file without its directory and
// final extension.
func BaseName(file string) string {
	base := filepath.Base(file)
	return SanitizeName(strings.TrimSuffix(base, filepath.Ext(base)))
}
