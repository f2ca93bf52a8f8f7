package domain

import (
	"sort"
	"strings"
)

// Default exclusion sets, matching the junk a development machine tends to
// accumulate. Callers can replace any of the three sets wholesale.
var (
	DefaultIgnoreDirs = []string{
		"node_modules", "venv", ".git", "__pycache__", ".mypy_cache",
		".pytest_cache", ".idea", ".next", "dist", "build", "out", ".cache",
	}
	DefaultIgnoreExts = []string{
		".exe", ".dll", ".pyc", ".pyo", ".log", ".tmp", ".cache",
	}
	DefaultIgnoreFiles = []string{
		"package-lock.json", "yarn.lock", ".DS_Store", "Thumbs.db",
	}
)

// ExclusionConfig decides which path names stay off the device. Matching is
// case-insensitive. Suffixes are a literal suffix test, not glob patterns:
// ".cache" also matches "foo.cache", and a suffix with no leading dot
// matches any name ending in it.
type ExclusionConfig struct {
	dirs     map[string]struct{}
	suffixes []string
	files    map[string]struct{}
}

func NewExclusionConfig(dirs, suffixes, files []string) ExclusionConfig {
	c := ExclusionConfig{
		dirs:     make(map[string]struct{}, len(dirs)),
		suffixes: make([]string, 0, len(suffixes)),
		files:    make(map[string]struct{}, len(files)),
	}
	for _, d := range dirs {
		c.dirs[strings.ToLower(d)] = struct{}{}
	}
	for _, s := range suffixes {
		c.suffixes = append(c.suffixes, strings.ToLower(s))
	}
	for _, f := range files {
		c.files[strings.ToLower(f)] = struct{}{}
	}
	return c
}

func DefaultExclusions() ExclusionConfig {
	return NewExclusionConfig(DefaultIgnoreDirs, DefaultIgnoreExts, DefaultIgnoreFiles)
}

// ExcludesDir reports whether a directory with the given base name should be
// pruned from the walk.
func (c ExclusionConfig) ExcludesDir(name string) bool {
	_, ok := c.dirs[strings.ToLower(name)]
	return ok
}

// ExcludesFile reports whether a file with the given base name should be
// skipped, either by exact name or by suffix.
func (c ExclusionConfig) ExcludesFile(name string) bool {
	lower := strings.ToLower(name)
	if _, ok := c.files[lower]; ok {
		return true
	}
	for _, suffix := range c.suffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// DirNames returns the configured directory names, sorted.
func (c ExclusionConfig) DirNames() []string {
	return sortedKeys(c.dirs)
}

// Suffixes returns the configured name suffixes, sorted.
func (c ExclusionConfig) Suffixes() []string {
	out := append([]string(nil), c.suffixes...)
	sort.Strings(out)
	return out
}

// FileNames returns the configured file names, sorted.
func (c ExclusionConfig) FileNames() []string {
	return sortedKeys(c.files)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
