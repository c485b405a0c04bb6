package hwdefs

import "strings"

type IRQSource uint8

const (
	External IRQSource = 1 << iota
	FrameCounter
	DMC

	numSources = 3
)

var irqSrcNames = [numSources]string{
	"ext",
	"fcnt",
	"dmc",
}

func (irq IRQSource) String() string {
	var names []string
	for i := range numSources {
		if irq&(1<<i) != 0 {
			names = append(names, irqSrcNames[i])
		}
	}
	return strings.Join(names, "|")
}

const (
	SoftReset = true
	HardReset = false
)

const NumAudioChannels = 5 // Square1, Square2, Triangle, Noise, DMC

// NTMirroring describes how the 4 logical nametables map to VRAM.
type NTMirroring uint8

const (
	HorizontalMirroring NTMirroring = iota // A A B B
	VerticalMirroring                      // A B A B
	OnlyAScreen                            // A A A A
	OnlyBScreen                            // B B B B
	FourScreen                             // A B C D (cartridge provides 2KB more)
)

var ntMirroringNames = [...]string{"horizontal", "vertical", "single-A", "single-B", "four-screen"}

func (m NTMirroring) String() string {
	if int(m) < len(ntMirroringNames) {
		return ntMirroringNames[m]
	}
	return "unknown"
}

// NTAddr maps a $2000-$3EFF PPU address to an offset in a 4KB nametable
// area, following the mirroring mode.
func (m NTMirroring) NTAddr(addr uint16) uint16 {
	addr &= 0x0FFF
	table, off := addr/0x400, addr&0x3FF
	switch m {
	case HorizontalMirroring:
		table >>= 1
	case VerticalMirroring:
		table &= 1
	case OnlyAScreen:
		table = 0
	case OnlyBScreen:
		table = 1
	}
	return table*0x400 + off
}
