//go:build !linux

package clipboard

import "context"

// WriteMultiFormat reports ErrUnsupported off Linux; the Copier then takes
// the plain-text branch.
func WriteMultiFormat(ctx context.Context, html, plain string) error {
	return ErrUnsupported
}

// Serve is a no-op off Linux; the owner daemon is only spawned on Wayland.
func Serve(e Entry) error {
	return nil
}
