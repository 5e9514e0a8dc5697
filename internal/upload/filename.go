package upload

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces a client supplied name to a safe ASCII file name.
// It returns "" when nothing usable is left, e.g. for "../" or "...".
func SanitizeFilename(name string) string {
	name = norm.NFKD.String(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '/' || r == '\\':
			b.WriteByte(' ')
		case r < 0x80:
			b.WriteRune(r)
		}
	}

	name = strings.Join(strings.Fields(b.String()), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// Extension returns the lower-cased extension of name including the dot.
func Extension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// AllowedExtension reports whether name ends in one of .jpg, .jpeg, .png or .gif.
func AllowedExtension(name string) bool {
	return allowedExtensions[Extension(name)]
}
