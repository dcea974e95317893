package desktop

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/dtopr/internal/validator"
)

// knownKeys are the keys dtopr writes. Anything else is reported as info.
var knownKeys = []string{
	"Encoding", "Version", "Type",
	KeyName, KeyComment, KeyExec, KeyPath, KeyIcon, KeyTerminal, KeyCategories,
}

// Validate checks a parsed document. File-existence checks on Exec, Path and
// Icon only produce warnings since entries are often validated on a
// different machine than they are installed on.
func Validate(doc *Document) *validator.Result {
	res := &validator.Result{}

	if doc.Group != GroupName {
		res.AddError("", 1, "first group must be ["+GroupName+"]", doc.Group)
	}

	seen := make(map[string]int)
	for _, p := range doc.Pairs {
		if first, dup := seen[p.Key]; dup {
			res.AddWarning(p.Key, p.Line, fmt.Sprintf("duplicate key, first defined on line %d", first), nil)
			continue
		}
		seen[p.Key] = p.Line
		if !slices.Contains(knownKeys, p.Key) {
			res.AddInfo(p.Key, p.Line, "key is not written by dtopr", nil)
		}
	}

	if v, ok := doc.Get("Type"); !ok {
		res.AddError("Type", 0, "is required", nil)
	} else if v != "Application" {
		res.AddError("Type", seen["Type"], "must be Application", v)
	}

	for _, k := range []string{KeyName, KeyExec} {
		if v, ok := doc.Get(k); !ok {
			res.AddError(k, 0, "is required", nil)
		} else if strings.TrimSpace(v) == "" {
			res.AddError(k, seen[k], "must not be empty", nil)
		}
	}

	if v, ok := doc.Get(KeyTerminal); ok && v != "true" && v != "false" {
		res.AddError(KeyTerminal, seen[KeyTerminal], "must be true or false", v)
	}

	if v, ok := doc.Get(KeyCategories); ok && v != "" {
		if !strings.HasSuffix(v, ";") {
			res.AddWarning(KeyCategories, seen[KeyCategories], "list should end with ';'", v)
		}
		for _, c := range SplitCategories(v) {
			if !IsCategory(c) && !strings.HasPrefix(c, "X-") {
				res.AddWarning(KeyCategories, seen[KeyCategories], "not a main category", c)
			}
		}
	}

	if v, ok := doc.Get(KeyExec); ok && v != "" {
		bin, _, _ := strings.Cut(v, " ")
		if filepath.IsAbs(bin) && !exists(bin) {
			res.AddWarning(KeyExec, seen[KeyExec], "executable does not exist", bin)
		}
	}
	for _, k := range []string{KeyPath, KeyIcon} {
		if v, ok := doc.Get(k); ok && filepath.IsAbs(v) && !exists(v) {
			res.AddWarning(k, seen[k], "does not exist", v)
		}
	}

	return res
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
