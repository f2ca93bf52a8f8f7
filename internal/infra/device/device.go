// Package device locates removable storage on the host. The core treats the
// returned root as an opaque path; everything platform-specific lives here.
package device

import "errors"

var ErrNoDevice = errors.New("no removable drive found")

type Resolver struct{}

// RemovableRoot returns the root path of the first removable storage device,
// or ErrNoDevice.
func (Resolver) RemovableRoot() (string, error) {
	return removableRoot()
}
