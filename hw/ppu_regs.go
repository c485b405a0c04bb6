package hw

// loopy is the internal VRAM address register layout (v and t):
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
type loopy uint16

func (l loopy) coarsex() uint8   { return uint8(l & 0x1F) }
func (l loopy) coarsey() uint8   { return uint8(l>>5) & 0x1F }
func (l loopy) nametable() uint8 { return uint8(l>>10) & 0x03 }
func (l loopy) finey() uint16    { return uint16(l>>12) & 0x07 }
func (l loopy) low() uint8       { return uint8(l) }
func (l loopy) high() uint8      { return uint8(l>>8) & 0x7F }
func (l loopy) addr() uint16     { return uint16(l) & 0x3FFF }
func (l loopy) val() uint16      { return uint16(l) & 0x7FFF }

func (l *loopy) setCoarsex(x uint8) { *l = *l&^0x001F | loopy(x&0x1F) }
func (l *loopy) setCoarsey(y uint8) { *l = *l&^0x03E0 | loopy(y&0x1F)<<5 }
func (l *loopy) setFiney(y uint16)  { *l = *l&^0x7000 | loopy(y&0x07)<<12 }
func (l *loopy) setNametable(nt uint8) {
	*l = *l&^0x0C00 | loopy(nt&0x03)<<10
}
func (l *loopy) setLow(v uint8)  { *l = *l&^0x00FF | loopy(v) }
func (l *loopy) setHigh(v uint8) { *l = *l&^0x7F00 | loopy(v&0x7F)<<8 }

// incx increments coarse X, switching horizontal nametable on overflow.
func (l *loopy) incx() {
	if l.coarsex() == 31 {
		l.setCoarsex(0)
		*l ^= 0x0400
	} else {
		*l++
	}
}

// incy increments fine Y, then coarse Y, switching vertical nametable after
// row 29. Rows 30-31 (attribute area) wrap to 0 without switching.
func (l *loopy) incy() {
	if l.finey() < 7 {
		l.setFiney(l.finey() + 1)
		return
	}

	l.setFiney(0)
	switch y := l.coarsey(); y {
	case 29:
		l.setCoarsey(0)
		*l ^= 0x0800
	case 31:
		l.setCoarsey(0)
	default:
		l.setCoarsey(y + 1)
	}
}

// copyx copies the horizontal position bits from t (dot 257).
func (l *loopy) copyx(t loopy) { *l = *l&^0x041F | t&0x041F }

// copyy copies the vertical position bits from t (pre-render dots 280-304).
func (l *loopy) copyy(t loopy) { *l = *l&^0x7BE0 | t&0x7BE0 }

const (
	// PPUCTRL bits
	// $2000

	// Nametable selection mask
	// (0 = $2000; 1 = $2400; 2 = $2800; 3 = $2C00)
	ntselect = 0b11

	// VRAM address increment per CPU read/write of PPUDATA
	// (0: +1 i.e. horizontal; 1: +32 i.e. vertical)
	vramIncr = 2

	// Sprite pattern table address for 8x8 sprites
	// (0: $0000; 1: $1000; ignored in 8x16 mode)
	spriteAddr = 3

	// Background pattern table address (0: $0000; 1: $1000)
	backgroundAddr = 4

	// Sprite size (0: 8x8 pixels; 1: 8x16 pixels)
	spriteSize = 5

	// Generate an NMI at the start of the
	// vertical blanking interval (0: off; 1: on)
	nmi = 7
)

const (
	// PPUMASK bits
	// $2001

	// Greyscale
	// (0: normal color, 1: produce a greyscale display)
	greyscale = 0

	// Show background in leftmost 8 pixels of screen
	leftmostBg = 1

	// Show sprites in leftmost 8 pixels of screen
	leftmostSprites = 2

	showBg      = 3
	showSprites = 4
)

const (
	// PPUSTATUS bits
	// $2002

	// Sprite overflow: set during sprite evaluation when more than 8
	// sprites are found on a scanline, cleared at dot 1 of the pre-render
	// line.
	spriteOverflow = 5

	// Sprite 0 Hit. Set when a nonzero pixel of sprite 0 overlaps a nonzero
	// background pixel; cleared at dot 1 of the pre-render line.
	sprite0Hit = 6

	// Vertical blank has started (0: not in vblank; 1: in vblank).
	// Set at dot 1 of line 241 (the line *after* the post-render
	// line); cleared after reading $2002 and at dot 1 of the
	// pre-render line.
	vblank = 7
)
