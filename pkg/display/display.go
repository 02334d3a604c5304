// Package display defines the presentation-adapter boundary spec.md §1
// and §2 describe as a thin outer layer: a pixel sink that receives one
// RGBA8888 frame per completed Game Boy frame, and a key source that
// forwards the eight abstract button indices of §6. Concrete adapters
// (sdlfrontend, streamfrontend) implement Driver against a *gameboy.GameBoy.
package display

import "github.com/thornewood/gbcore/internal/gameboy"

// Driver renders frames produced by a running GameBoy and forwards key
// events back into it, until Run returns (normally on a quit signal).
type Driver interface {
	Run(gb *gameboy.GameBoy) error
}
