package ppu

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thornewood/gbcore/internal/interrupts"
	"golang.org/x/image/draw"
)

// frameToRGBA converts a raw RGBA8888 frame buffer into an image.RGBA,
// the representation imgDiff compares against.
func frameToRGBA(frame []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	copy(img.Pix, frame)
	return img
}

// imgDiff reports the accumulated per-channel squared-difference between
// two equally-sized images, following the same bounds-copy-then-compare
// shape the teacher's own ROM-test image comparison uses.
func imgDiff(t *testing.T, got, want *image.RGBA) int64 {
	t.Helper()
	require.Equal(t, want.Bounds(), got.Bounds())

	copied := image.NewRGBA(got.Bounds())
	draw.Draw(copied, copied.Bounds(), got, image.Point{}, draw.Src)

	var diff int64
	for y := got.Bounds().Min.Y; y < got.Bounds().Max.Y; y++ {
		for x := got.Bounds().Min.X; x < got.Bounds().Max.X; x++ {
			r1, g1, b1, a1 := copied.At(x, y).RGBA()
			r2, g2, b2, a2 := want.At(x, y).RGBA()
			diff += sqDiff(r1, r2) + sqDiff(g1, g2) + sqDiff(b1, b2) + sqDiff(a1, a2)
		}
	}
	return diff
}

func sqDiff(a, b uint32) int64 {
	d := int64(a) - int64(b)
	return d * d
}

func newTestPPU() *PPU {
	p := New(interrupts.NewController())
	p.Write(0xFF40, 0x91) // LCD on, BG on, BG tile data at 0x8000
	return p
}

func TestTickCyclesThroughModesInOneScanline(t *testing.T) {
	p := newTestPPU()
	require.Equal(t, ModeOAMScan, p.Mode())

	p.Tick(80)
	require.Equal(t, ModePixelTransfer, p.Mode())

	p.Tick(172)
	require.Equal(t, ModeHBlank, p.Mode())

	p.Tick(204)
	require.Equal(t, ModeOAMScan, p.Mode())
	require.Equal(t, uint8(1), p.LY())
}

func TestTickEntersVBlankAndRequestsInterruptAtLine144(t *testing.T) {
	p := newTestPPU()
	for line := 0; line < 144; line++ {
		p.Tick(456)
	}
	require.Equal(t, ModeVBlank, p.Mode())
	require.Equal(t, uint8(144), p.LY())
	require.NotZero(t, p.irq.Flag&(1<<interrupts.VBlankBit))
	require.False(t, p.FrameReady()) // the frame is delivered on the LY wrap, not here
}

func TestTakeFrameClearsReadyFlagAndReturnsFullBuffer(t *testing.T) {
	p := newTestPPU()
	for line := 0; line < 154; line++ { // 144 visible lines + 10 VBLANK lines, then LY wraps
		p.Tick(456)
	}
	require.True(t, p.FrameReady())

	frame := p.TakeFrame()
	require.Len(t, frame, Width*Height*4)
	require.False(t, p.FrameReady())
}

func TestLCDOffHoldsLYAtZero(t *testing.T) {
	p := newTestPPU()
	p.Write(0xFF40, 0x00)
	p.Tick(10000)
	require.Equal(t, uint8(0), p.LY())
	require.Equal(t, ModeHBlank, p.Mode())
}

func TestLYCCoincidenceRequestsLCDInterruptWhenEnabled(t *testing.T) {
	p := newTestPPU()
	p.Write(0xFF45, 1) // LYC = 1
	p.Write(0xFF41, 0x40) // enable LYC=LY interrupt

	p.Tick(456) // LY -> 1, should match LYC
	require.True(t, p.irq.Pending())
}

func TestReadSTATReportsModeAndCoincidenceBit(t *testing.T) {
	p := newTestPPU()
	p.Write(0xFF45, 0)
	require.Equal(t, uint8(1), p.readSTAT()&0x04>>2)
	require.Equal(t, ModeOAMScan, p.readSTAT()&0x03)
}

func TestRenderScanlineDrawsBackgroundTileFromVRAM(t *testing.T) {
	p := newTestPPU()
	p.Write(0xFF47, 0xE4) // identity palette: 0,1,2,3 -> 0,1,2,3

	// Tile 0 at 0x8000: row 0 bytes set every pixel's color index to 3 (11).
	p.WriteVRAM(0x8000, 0xFF)
	p.WriteVRAM(0x8001, 0xFF)
	// Tile map entry (0,0) at 0x9800 already defaults to tile 0.

	p.Tick(80)  // OAM scan
	p.Tick(172) // pixel transfer -> renders line 0

	frame := p.TakeFrame()
	require.Equal(t, shades[3], frame[0]) // pixel (0,0) red channel
	require.Equal(t, uint8(255), frame[3])
}

func TestSpriteDrawnOverTransparentBackground(t *testing.T) {
	p := newTestPPU()
	p.Write(0xFF47, 0xE4)
	p.Write(0xFF48, 0xE4) // OBP0 identity

	// Background tile 0 stays all zero (transparent color index 0).
	// Sprite tile 1 at 0x8010: color index 3 across the row.
	p.WriteVRAM(0x8010, 0xFF)
	p.WriteVRAM(0x8011, 0xFF)

	p.Write(0xFF40, 0x93) // LCD on, BG on, sprites on

	// OAM entry 0: Y=16 (screen row 0), X=8 (screen col 0), tile 1, no flags.
	p.WriteOAM(0xFE00, 16)
	p.WriteOAM(0xFE01, 8)
	p.WriteOAM(0xFE02, 1)
	p.WriteOAM(0xFE03, 0)

	p.Tick(80)
	p.Tick(172)

	frame := p.TakeFrame()
	require.Equal(t, shades[3], frame[0])
}

func TestSpriteClippedAtTopAndLeftScreenEdgeStillDraws(t *testing.T) {
	p := newTestPPU()
	p.Write(0xFF47, 0xE4)
	p.Write(0xFF48, 0xE4)
	p.Write(0xFF40, 0x93) // LCD on, BG on, sprites on

	// Sprite tile 1: every row's every pixel is color index 3, so the test
	// is insensitive to which tile row the clipped sprite samples from.
	for i := uint16(0); i < 16; i++ {
		p.WriteVRAM(0x8010+i, 0xFF)
	}

	// OAM Y=15 (one above the screen top, so only its bottom 7 rows show,
	// starting at screen row 0) and X=4 (four columns left of the screen,
	// so only its rightmost 4 columns show, starting at screen col 0).
	p.WriteOAM(0xFE00, 15)
	p.WriteOAM(0xFE01, 4)
	p.WriteOAM(0xFE02, 1)
	p.WriteOAM(0xFE03, 0)

	p.Tick(80)
	p.Tick(172)

	frame := p.TakeFrame()
	require.Equal(t, shades[3], frame[0]) // screen (0,0) is inside the clipped sprite
}

func TestRenderedFrameMatchesExpectedImagePixelForPixel(t *testing.T) {
	p := newTestPPU()
	p.Write(0xFF47, 0xE4) // identity palette

	// Tile 0 is left blank (color index 0, shade 0) except for its first
	// row, set to color index 3 (shade 255) across every pixel.
	p.WriteVRAM(0x8000, 0xFF)
	p.WriteVRAM(0x8001, 0xFF)

	p.Tick(80)
	p.Tick(172)
	frame := p.TakeFrame()

	// Only line 0 has been rendered by the single tick sequence above; every
	// other row is still the PPU's zero-valued (fully transparent) buffer.
	want := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for x := 0; x < Width; x++ {
		want.SetRGBA(x, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}

	require.Zero(t, imgDiff(t, frameToRGBA(frame), want))
}
