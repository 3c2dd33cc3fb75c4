package utils

import "strings"

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Underscored joins whitespace-separated words with underscores, for use in
// generated filenames ("Jane Doe" -> "Jane_Doe").
func Underscored(s string) string {
	return strings.Join(strings.Fields(s), "_")
}

// SafeFilenamePart sanitizes a value for embedding in a filename.
func SafeFilenamePart(s string) string {
	s = Underscored(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 60 {
		s = s[:60]
	}
	return s
}
