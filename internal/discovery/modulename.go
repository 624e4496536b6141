package discovery

import (
	"path/filepath"
	"strings"
)

// ModuleNameFromPath translates a path relative to a scan root into a fully
// qualified Python module name. "a/b/c.py" becomes "a.b.c"; "a/b/__init__.py"
// becomes the package "a.b". ok is false for paths that do not name an
// importable module, including a bare top-level __init__.py.
func ModuleNameFromPath(rel string) (name string, isPackage bool, ok bool) {
	rel = filepath.ToSlash(rel)
	if !strings.HasSuffix(rel, ".py") {
		return "", false, false
	}

	parts := strings.Split(strings.TrimSuffix(rel, ".py"), "/")
	last := parts[len(parts)-1]
	if last == "__init__" {
		parts = parts[:len(parts)-1]
		if len(parts) == 0 {
			return "", false, false
		}
		return strings.Join(parts, "."), true, true
	}

	for _, p := range parts {
		if p == "" {
			return "", false, false
		}
	}
	return strings.Join(parts, "."), false, true
}

// JoinPackage appends a slash-separated subdirectory path to a package name
// using dotted notation. An empty subdirectory returns the base unchanged.
func JoinPackage(base, relDir string) string {
	relDir = filepath.ToSlash(relDir)
	if relDir == "" || relDir == "." {
		return base
	}
	suffix := strings.ReplaceAll(relDir, "/", ".")
	if base == "" {
		return suffix
	}
	return base + "." + suffix
}
