package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

// ExtKey returns the statistics bucket for a file name: the lower-cased
// substring from the last '.' to the end, or "" for extensionless names.
func ExtKey(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// ExtStat holds the file count and cumulative byte size for one extension.
type ExtStat struct {
	Count int
	Bytes int64
}

// ExtStats accumulates per-extension statistics keyed by ExtKey.
type ExtStats map[string]ExtStat

func (s ExtStats) Add(name string, size int64) {
	key := ExtKey(name)
	stat := s[key]
	stat.Count++
	stat.Bytes += size
	s[key] = stat
}

// ExtRow is one rendered row of an extension table.
type ExtRow struct {
	Ext   string
	Count int
	Bytes int64
}

// Rows returns the stats sorted by descending size, ties broken by ascending
// extension name.
func (s ExtStats) Rows() []ExtRow {
	rows := make([]ExtRow, 0, len(s))
	for ext, stat := range s {
		rows = append(rows, ExtRow{Ext: ext, Count: stat.Count, Bytes: stat.Bytes})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Bytes != rows[j].Bytes {
			return rows[i].Bytes > rows[j].Bytes
		}
		return rows[i].Ext < rows[j].Ext
	})
	return rows
}
