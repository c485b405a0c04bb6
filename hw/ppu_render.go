package hw

// renderDot performs the memory fetches and the pixel output of the current
// dot, for visible and pre-render lines.
func (p *PPU) renderDot() {
	cycle := p.Cycle
	visible := p.Scanline < ScreenHeight

	if !p.renderingEnabled() {
		if visible && cycle >= 1 && cycle <= ScreenWidth {
			p.drawBackdrop(cycle - 1)
		}
		return
	}

	if (cycle >= 2 && cycle <= 257) || (cycle >= 322 && cycle <= 337) {
		p.shiftBg()
	}

	switch {
	case (cycle >= 2 && cycle <= 257) || (cycle >= 321 && cycle <= 337):
		p.fetchBg(cycle)
	case cycle == 338 || cycle == 340:
		// unused nametable fetches
		p.bg.nt = p.read(0x2000 | p.vramAddr.addr()&0x0FFF)
	}

	if visible && cycle >= 1 && cycle <= ScreenWidth {
		p.drawPixel(cycle - 1)
	}

	switch {
	case cycle == 256:
		p.vramAddr.incy()
	case cycle == 257:
		p.vramAddr.copyx(p.vramTmp)
		if visible {
			p.evalSprites()
		} else {
			p.spriteCount = 0
			p.sprite0Line = false
		}
	case cycle >= 280 && cycle <= 304 && !visible:
		p.vramAddr.copyy(p.vramTmp)
	}

	if cycle >= 257 && cycle <= 320 {
		p.oamAddr = 0
		p.fetchSprite(cycle)
	}
}

func (p *PPU) fetchBg(cycle int) {
	switch (cycle - 1) % 8 {
	case 0:
		p.loadBgShifters()
		p.bg.nt = p.read(0x2000 | p.vramAddr.addr()&0x0FFF)
	case 2:
		v := p.vramAddr
		addr := 0x23C0 | uint16(v.nametable())<<10 | uint16(v.coarsey()>>2)<<3 | uint16(v.coarsex()>>2)
		at := p.read(addr)
		if v.coarsey()&0x02 != 0 {
			at >>= 4
		}
		if v.coarsex()&0x02 != 0 {
			at >>= 2
		}
		p.bg.at = at & 0x03
	case 4:
		p.bg.lo = p.read(p.bgPatternAddr())
	case 6:
		p.bg.hi = p.read(p.bgPatternAddr() + 8)
	case 7:
		p.vramAddr.incx()
	}
}

func (p *PPU) bgPatternAddr() uint16 {
	return uint16(p.PPUCTRL.GetBiti(backgroundAddr))<<12 | uint16(p.bg.nt)<<4 | p.vramAddr.finey()
}

func (p *PPU) loadBgShifters() {
	p.bg.shiftlo = p.bg.shiftlo&0xFF00 | uint16(p.bg.lo)
	p.bg.shifthi = p.bg.shifthi&0xFF00 | uint16(p.bg.hi)

	// The attribute bits are expanded to 8 pixels.
	var lo, hi uint16
	if p.bg.at&0x01 != 0 {
		lo = 0xFF
	}
	if p.bg.at&0x02 != 0 {
		hi = 0xFF
	}
	p.bg.atshiftlo = p.bg.atshiftlo&0xFF00 | lo
	p.bg.atshifthi = p.bg.atshifthi&0xFF00 | hi
}

func (p *PPU) shiftBg() {
	p.bg.shiftlo <<= 1
	p.bg.shifthi <<= 1
	p.bg.atshiftlo <<= 1
	p.bg.atshifthi <<= 1
}

func (p *PPU) spriteHeight() int {
	if p.PPUCTRL.GetBit(spriteSize) {
		return 16
	}
	return 8
}

// evalSprites fills secondary OAM with the (up to 8) sprites visible on the
// next line.
func (p *PPU) evalSprites() {
	height := p.spriteHeight()

	for i := range p.oam2 {
		p.oam2[i] = 0xFF
	}
	p.spriteCount = 0
	p.sprite0Line = false

	for n := range 64 {
		y := int(p.oam[n*4])
		row := p.Scanline - y
		if row < 0 || row >= height {
			continue
		}
		if p.spriteCount == 8 {
			p.PPUSTATUS.SetBit(spriteOverflow)
			break
		}
		if n == 0 {
			p.sprite0Line = true
		}
		copy(p.oam2[p.spriteCount*4:], p.oam[n*4:n*4+4])
		p.spriteCount++
	}
}

// fetchSprite performs the sprite fetches of dots 257-320: for each of the 8
// slots, 2 garbage nametable reads followed by the pattern bytes. Empty slots
// fetch tile $FF, so that the pattern table accesses (and thus A12) follow
// the hardware.
func (p *PPU) fetchSprite(cycle int) {
	slot := (cycle - 257) / 8
	switch (cycle - 257) % 8 {
	case 0, 2:
		p.read(0x2000 | p.vramAddr.addr()&0x0FFF)
	case 4:
		p.sprites[slot].datal = p.read(p.spritePatternAddr(slot))
	case 6:
		s := &p.sprites[slot]
		s.datah = p.read(p.spritePatternAddr(slot) + 8)
		if slot >= int(p.spriteCount) {
			*s = sprite{x: 0xFF}
			return
		}

		s.attr = p.oam2[slot*4+2]
		s.x = p.oam2[slot*4+3]
		if s.attr&0x40 != 0 { // horizontal flip
			s.datal = reverseBits(s.datal)
			s.datah = reverseBits(s.datah)
		}
	}
}

func (p *PPU) spritePatternAddr(slot int) uint16 {
	tile := uint16(0xFF)
	row := 0
	var attr uint8
	if slot < int(p.spriteCount) {
		tile = uint16(p.oam2[slot*4+1])
		attr = p.oam2[slot*4+2]
		row = p.Scanline - int(p.oam2[slot*4])
	}

	height := p.spriteHeight()
	if attr&0x80 != 0 { // vertical flip
		row = height - 1 - row
	}

	if height == 16 {
		table := (tile & 0x01) << 12
		tile &= 0xFE
		if row >= 8 {
			tile++
			row -= 8
		}
		return table | tile<<4 | uint16(row)
	}

	table := uint16(p.PPUCTRL.GetBiti(spriteAddr)) << 12
	return table | tile<<4 | uint16(row)
}

func reverseBits(b uint8) uint8 {
	b = b&0xF0>>4 | b&0x0F<<4
	b = b&0xCC>>2 | b&0x33<<2
	b = b&0xAA>>1 | b&0x55<<1
	return b
}

// bgPixel returns the 4-bit palette index of the background at x, 0 if
// transparent.
func (p *PPU) bgPixel(x int) uint8 {
	if !p.PPUMASK.GetBit(showBg) || (x < 8 && !p.PPUMASK.GetBit(leftmostBg)) {
		return 0
	}

	mux := uint16(0x8000) >> p.bg.finex
	var pix uint8
	if p.bg.shiftlo&mux != 0 {
		pix |= 0x01
	}
	if p.bg.shifthi&mux != 0 {
		pix |= 0x02
	}
	if pix == 0 {
		return 0
	}
	if p.bg.atshiftlo&mux != 0 {
		pix |= 0x04
	}
	if p.bg.atshifthi&mux != 0 {
		pix |= 0x08
	}
	return pix
}

// spritePixel returns the palette index (in the sprite half of the palette)
// of the frontmost opaque sprite pixel at x, its priority bit, and whether it
// belongs to sprite 0.
func (p *PPU) spritePixel(x int) (pix uint8, behind, zero bool) {
	if !p.PPUMASK.GetBit(showSprites) || (x < 8 && !p.PPUMASK.GetBit(leftmostSprites)) {
		return 0, false, false
	}

	for i := range int(p.spriteCount) {
		s := &p.sprites[i]
		off := x - int(s.x)
		if off < 0 || off > 7 {
			continue
		}

		shift := 7 - off
		color := (s.datah>>shift&1)<<1 | s.datal>>shift&1
		if color == 0 {
			continue
		}
		pix = 0x10 | (s.attr&0x03)<<2 | color
		return pix, s.attr&0x20 != 0, i == 0 && p.sprite0Line
	}
	return 0, false, false
}

func (p *PPU) drawPixel(x int) {
	bg := p.bgPixel(x)
	sp, behind, zero := p.spritePixel(x)

	if zero && bg != 0 && x != 255 {
		p.PPUSTATUS.SetBit(sprite0Hit)
	}

	var idx uint8
	switch {
	case bg == 0 && sp == 0:
		idx = 0
	case bg == 0:
		idx = sp
	case sp == 0:
		idx = bg
	case behind:
		idx = bg
	default:
		idx = sp
	}
	p.setPixel(x, p.palette[paletteIndex(uint16(idx))])
}

// drawBackdrop outputs the backdrop color when rendering is disabled. If the
// VRAM address points into palette RAM, that color is displayed instead.
func (p *PPU) drawBackdrop(x int) {
	addr := uint16(0)
	if v := p.vramAddr.addr(); v >= 0x3F00 {
		addr = v
	}
	p.setPixel(x, p.palette[paletteIndex(addr)])
}

func (p *PPU) setPixel(x int, color uint8) {
	if p.PPUMASK.GetBit(greyscale) {
		color &= 0x30
	}
	c := palette[p.PPUMASK.Value>>5][color&0x3F]

	off := p.Scanline*p.screen.Stride + x*4
	pix := p.screen.Pix[off : off+4 : off+4]
	pix[0] = c.R
	pix[1] = c.G
	pix[2] = c.B
	pix[3] = c.A
}
