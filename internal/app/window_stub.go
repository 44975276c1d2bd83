//go:build !ebiten

package app

import "errors"

// ErrNoWindow is returned by RunWindow in builds without the ebiten tag.
var ErrNoWindow = errors.New("window display requires building with the 'ebiten' tag; use --display terminal or rebuild with -tags ebiten")

// RunWindow reports that the window sink is not compiled in.
func RunWindow(*Driver, *Config) error {
	return ErrNoWindow
}
