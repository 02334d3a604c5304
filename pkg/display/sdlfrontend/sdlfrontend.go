// Package sdlfrontend is the primary windowed presentation adapter: an
// SDL2 window showing the 160x144 RGBA8888 pixel sink of spec.md §6 at an
// integer scale, forwarding keyboard input to the eight abstract button
// indices. It is deliberately thin — no debugger, no palettes, no save
// states beyond battery RAM — matching §1's "thin presentation adapter"
// scoping of the windowing/keyboard layer.
package sdlfrontend

import (
	"unsafe"

	"github.com/pkg/errors"
	"github.com/thornewood/gbcore/internal/gameboy"
	"github.com/thornewood/gbcore/internal/joypad"
	"github.com/thornewood/gbcore/internal/ppu"
	"github.com/veandco/go-sdl2/sdl"
)

// Scale is the integer pixel multiplier applied to the 160x144 frame.
const Scale = 4

// keyMap associates SDL scancodes with the abstract key indices of
// spec.md §6.
var keyMap = map[sdl.Scancode]joypad.Key{
	sdl.SCANCODE_RIGHT:  joypad.Right,
	sdl.SCANCODE_LEFT:   joypad.Left,
	sdl.SCANCODE_UP:     joypad.Up,
	sdl.SCANCODE_DOWN:   joypad.Down,
	sdl.SCANCODE_X:      joypad.A,
	sdl.SCANCODE_Z:      joypad.B,
	sdl.SCANCODE_RSHIFT: joypad.Select,
	sdl.SCANCODE_RETURN: joypad.Start,
}

// Driver is the SDL2-backed display.Driver.
type Driver struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// New initializes SDL's video subsystem and creates a window sized for
// the 160x144 frame at Scale.
func New(title string) (*Driver, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "sdlfrontend: initializing SDL")
	}

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(ppu.Width*Scale), int32(ppu.Height*Scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "sdlfrontend: creating window")
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "sdlfrontend: creating renderer")
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, ppu.Width, ppu.Height)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "sdlfrontend: creating texture")
	}

	return &Driver{window: window, renderer: renderer, texture: texture}, nil
}

// Run drives gb one frame at a time until the window receives a quit
// event, rendering each completed frame and forwarding keyboard state.
func (d *Driver) Run(gb *gameboy.GameBoy) error {
	defer d.Close()

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return gb.Save()
			case *sdl.KeyboardEvent:
				key, ok := keyMap[e.Keysym.Scancode]
				if !ok {
					continue
				}
				if e.Type == sdl.KEYDOWN {
					gb.Press(key)
				} else if e.Type == sdl.KEYUP {
					gb.Release(key)
				}
			}
		}

		frame := gb.RunFrame()
		if err := d.present(frame); err != nil {
			return err
		}
	}
}

func (d *Driver) present(frame []byte) error {
	if err := d.texture.Update(nil, unsafe.Pointer(&frame[0]), ppu.Width*4); err != nil {
		return errors.Wrap(err, "sdlfrontend: updating texture")
	}
	if err := d.renderer.Clear(); err != nil {
		return errors.Wrap(err, "sdlfrontend: clearing renderer")
	}
	if err := d.renderer.Copy(d.texture, nil, nil); err != nil {
		return errors.Wrap(err, "sdlfrontend: copying texture")
	}
	d.renderer.Present()
	return nil
}

// Close releases SDL resources. Safe to call after Run returns.
func (d *Driver) Close() {
	if d.texture != nil {
		d.texture.Destroy()
	}
	if d.renderer != nil {
		d.renderer.Destroy()
	}
	if d.window != nil {
		d.window.Destroy()
	}
	sdl.Quit()
}
