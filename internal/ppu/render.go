package ppu

// renderScanline composes background, window, and sprites for the current
// LY into the frame buffer, per spec.md §4.5.
func (p *PPU) renderScanline() {
	line := p.ly
	if line >= Height {
		return
	}

	var bgIndex [Width]uint8
	p.renderBackground(line, &bgIndex)
	p.renderWindow(line, &bgIndex)
	p.renderSprites(line, &bgIndex)
}

func (p *PPU) tileAddress(tileNumber uint8) uint16 {
	if p.lcdc&0x10 != 0 {
		return 0x8000 + uint16(tileNumber)*16
	}
	return uint16(int32(0x9000) + int32(int8(tileNumber))*16)
}

// tileRowBytes returns the two bytes that encode one row of a tile, per
// the layout spec.md §4.5 describes: the high bit of each pixel's color
// index comes from the byte at the named row, the low bit from the byte
// that follows it.
func (p *PPU) tileRowBytes(tileAddr uint16, row uint8) (hi, lo uint8) {
	base := tileAddr + uint16(row)*2
	hi = p.vram[base-0x8000]
	lo = p.vram[base+1-0x8000]
	return
}

func colorIndex(hi, lo uint8, bit uint8) uint8 {
	return (hi>>bit)&1<<1 | (lo>>bit)&1
}

func shadeFromPalette(palette, colorValue uint8) uint8 {
	shade := (palette >> (colorValue * 2)) & 0x3
	return shades[shade]
}

func (p *PPU) setPixel(x, y int, shade uint8) {
	offset := (y*Width + x) * 4
	p.frame[offset] = shade
	p.frame[offset+1] = shade
	p.frame[offset+2] = shade
	p.frame[offset+3] = 255
}

func (p *PPU) renderBackground(line uint8, bgIndex *[Width]uint8) {
	tileMapBase := uint16(0x9800)
	if p.lcdc&0x08 != 0 {
		tileMapBase = 0x9C00
	}

	bgY := line + p.scy
	tileRow := bgY / 8
	rowInTile := bgY % 8

	for x := 0; x < Width; x++ {
		bgX := uint8(x) + p.scx
		tileCol := bgX / 8
		colInTile := bgX % 8

		mapOffset := uint16(tileRow)*32 + uint16(tileCol)
		tileNumber := p.vram[tileMapBase+mapOffset-0x8000]

		tileAddr := p.tileAddress(tileNumber)
		hi, lo := p.tileRowBytes(tileAddr, rowInTile)
		colorValue := colorIndex(hi, lo, 7-colInTile)

		bgIndex[x] = colorValue
		p.setPixel(x, int(line), shadeFromPalette(p.bgp, colorValue))
	}
}

func (p *PPU) renderWindow(line uint8, bgIndex *[Width]uint8) {
	if p.lcdc&0x20 == 0 {
		return
	}
	if line < p.wy {
		return
	}

	tileMapBase := uint16(0x9800)
	if p.lcdc&0x40 != 0 {
		tileMapBase = 0x9C00
	}

	wx := int(p.wx) - 7
	windowY := line - p.wy
	tileRow := windowY / 8
	rowInTile := windowY % 8

	for x := 0; x < Width; x++ {
		if x < wx {
			continue
		}
		windowX := uint8(x - wx)
		tileCol := windowX / 8
		colInTile := windowX % 8

		mapOffset := uint16(tileRow)*32 + uint16(tileCol)
		tileNumber := p.vram[tileMapBase+mapOffset-0x8000]

		tileAddr := p.tileAddress(tileNumber)
		hi, lo := p.tileRowBytes(tileAddr, rowInTile)
		colorValue := colorIndex(hi, lo, 7-colInTile)

		bgIndex[x] = colorValue
		p.setPixel(x, int(line), shadeFromPalette(p.bgp, colorValue))
	}
}

func (p *PPU) renderSprites(line uint8, bgIndex *[Width]uint8) {
	if p.lcdc&0x02 == 0 {
		return
	}

	height := uint8(8)
	if p.lcdc&0x04 != 0 {
		height = 16
	}

	for i := 0; i < 40; i++ {
		base := i * 4
		yPos := int(p.oam[base]) - 16
		xPos := int(p.oam[base+1]) - 8
		tileNumber := p.oam[base+2]
		attr := p.oam[base+3]

		if int(line) < yPos || int(line) >= yPos+int(height) {
			continue
		}

		bgOverSprite := attr&0x80 != 0
		yFlip := attr&0x40 != 0
		xFlip := attr&0x20 != 0
		palette := p.obp0
		if attr&0x10 != 0 {
			palette = p.obp1
		}

		row := uint8(int(line) - yPos)
		if yFlip {
			row = height - 1 - row
		}

		// 8x16 sprites index tile pairs from the block-0 base tile number
		// with bit 0 cleared, per the standard LR35902 convention.
		tileNum := tileNumber
		if height == 16 {
			tileNum &^= 0x01
		}
		tileAddr := uint16(0x8000) + uint16(tileNum)*16
		hi, lo := p.tileRowBytes(tileAddr, row)

		for col := uint8(0); col < 8; col++ {
			screenX := xPos + int(col)
			if screenX < 0 || screenX >= Width {
				continue
			}

			bit := col
			if !xFlip {
				bit = 7 - col
			}
			colorValue := colorIndex(hi, lo, bit)
			if colorValue == 0 {
				continue
			}
			if bgOverSprite && bgIndex[screenX] != 0 {
				continue
			}

			p.setPixel(screenX, int(line), shadeFromPalette(palette, colorValue))
		}
	}
}
