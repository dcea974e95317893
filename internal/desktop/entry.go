package desktop

import "slices"

// Extension is appended to the base name of every generated file.
const Extension = ".desktop"

// GroupName is the only group dtopr writes.
const GroupName = "Desktop Entry"

// Field names, in collection order.
const (
	KeyName       = "Name"
	KeyComment    = "Comment"
	KeyExec       = "Exec"
	KeyPath       = "Path"
	KeyIcon       = "Icon"
	KeyTerminal   = "Terminal"
	KeyCategories = "Categories"
)

var header = []string{
	"[" + GroupName + "]",
	"Encoding=UTF-8",
	"Version=1.0",
	"Type=Application",
}

var categories = []string{
	"AudioVideo",
	"Development",
	"Education",
	"Game",
	"Graphics",
	"Network",
	"Office",
	"Science",
	"Settings",
	"System",
	"Utility",
}

// leadingKeys are written before all other fields regardless of registry order.
var leadingKeys = []string{KeyTerminal}

// Header returns the fixed lines that open every generated document.
func Header() []string {
	return slices.Clone(header)
}

// Categories returns the main category labels offered to the user.
func Categories() []string {
	return slices.Clone(categories)
}

// IsCategory reports whether label is one of [Categories].
func IsCategory(label string) bool {
	return slices.Contains(categories, label)
}

// FileName returns base with [Extension] appended.
func FileName(base string) string {
	return base + Extension
}
