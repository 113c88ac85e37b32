package attachments

import (
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// SanitizeFilename replaces every character outside [A-Za-z0-9.-] with '_'.
// A name made only of dots becomes "_" so it is never "." or "..".
func SanitizeFilename(name string) string {
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	if name != "" && strings.Trim(name, ".") == "" {
		return "_"
	}
	return name
}
