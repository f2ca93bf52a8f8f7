//go:build !windows

package device

import (
	"os"
	"path/filepath"
)

func removableRoot() (string, error) {
	return firstMount(candidateBases())
}

// candidateBases lists the directories where desktop systems auto-mount
// removable media.
func candidateBases() []string {
	user := os.Getenv("USER")
	bases := []string{"/Volumes"}
	if user != "" {
		bases = append(bases,
			filepath.Join("/media", user),
			filepath.Join("/run/media", user),
		)
	}
	return append(bases, "/media")
}

func firstMount(bases []string) (string, error) {
	for _, base := range bases {
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				return filepath.Join(base, entry.Name()), nil
			}
		}
	}
	return "", ErrNoDevice
}
