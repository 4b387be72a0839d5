package domain

import (
	"path"
	"strings"
)

// IsInternal reports whether an identifier names an internal or hidden
// item: its base name starts with '_' or '.'. Internal items are excluded
// from listings, edits, and associative tracking alike. The identifier may
// be a bare name, a slash path, or an OS path.
func IsInternal(identifier string) bool {
	name := path.Base(strings.ReplaceAll(identifier, "\\", "/"))
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}
