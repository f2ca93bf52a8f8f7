//go:build windows

package device

import "golang.org/x/sys/windows"

func removableRoot() (string, error) {
	for letter := 'A'; letter <= 'Z'; letter++ {
		root := string(letter) + `:\`
		ptr, err := windows.UTF16PtrFromString(root)
		if err != nil {
			continue
		}
		if windows.GetDriveType(ptr) == windows.DRIVE_REMOVABLE {
			return root, nil
		}
	}
	return "", ErrNoDevice
}
