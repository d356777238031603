//go:build !linux

package capture

import "context"

// SystemDevice is only backed by real hardware on Linux.
type SystemDevice struct {
	Name string
}

func NewSystemDevice(name string) *SystemDevice {
	return &SystemDevice{Name: name}
}

func (d *SystemDevice) Open(context.Context) (Stream, error) {
	return nil, ErrDeviceUnavailable
}
