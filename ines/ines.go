// Package ines decodes cartridge images in the iNES file format (with NES 2.0
// header detection), used for the distribution of NES binary programs.
package ines

import (
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

const Magic = "NES\x1a"

const (
	headerSize  = 16
	trainerSize = 512
	prgBankSize = 16384
	chrBankSize = 8192
)

var (
	ErrBadMagic  = errors.New("invalid magic number")
	ErrTruncated = errors.New("truncated image")
	ErrNoPRG     = errors.New("no PRG ROM")
)

// Mirroring is the hardwired nametable arrangement declared in the header.
type Mirroring uint8

const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case FourScreen:
		return "four-screen"
	}
	return fmt.Sprintf("Mirroring(%d)", uint8(m))
}

type Rom struct {
	header
	Trainer []byte // Trainer, 512 bytes if present, or empty.
	PRG     []byte // PRG is PRG ROM data (length is multiples of 16k)
	CHR     []byte // CHR is CHR ROM data (length is multiples of 8k), empty for CHR RAM.
}

// Open loads a rom from file.
func Open(path string) (*Rom, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(buf)
}

// Decode decodes a full iNES image. The returned Rom doesn't alias buf.
func Decode(buf []byte) (*Rom, error) {
	rom := new(Rom)
	if err := rom.decode(buf); err != nil {
		return nil, err
	}
	return rom, nil
}

// ReadFrom implements io.ReaderFrom interface
func (rom *Rom) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return int64(len(buf)), err
	}
	return int64(len(buf)), rom.decode(buf)
}

func (rom *Rom) decode(buf []byte) error {
	if err := rom.header.decode(buf); err != nil {
		return fmt.Errorf("failed to decode header: %w", err)
	}
	off := headerSize

	if rom.HasTrainer() {
		if len(buf) < off+trainerSize {
			return fmt.Errorf("incomplete TRAINER section: %w", ErrTruncated)
		}
		rom.Trainer = clone(buf[off : off+trainerSize])
		off += trainerSize
	}

	if len(buf) < off+rom.prgsz {
		return fmt.Errorf("incomplete PRG section (%d/%d bytes): %w", len(buf)-off, rom.prgsz, ErrTruncated)
	}
	rom.PRG = clone(buf[off : off+rom.prgsz])
	off += rom.prgsz

	if len(buf) < off+rom.chrsz {
		return fmt.Errorf("incomplete CHR section (%d/%d bytes): %w", len(buf)-off, rom.chrsz, ErrTruncated)
	}
	rom.CHR = clone(buf[off : off+rom.chrsz])
	return nil
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}

// CRC32 identifies the cartridge contents (PRG then CHR), header excluded.
func (rom *Rom) CRC32() uint32 {
	crc := crc32.ChecksumIEEE(rom.PRG)
	return crc32.Update(crc, crc32.IEEETable, rom.CHR)
}

// Bytes encodes rom back to the iNES format.
func (rom *Rom) Bytes() []byte {
	buf := make([]byte, 0, headerSize+len(rom.Trainer)+len(rom.PRG)+len(rom.CHR))
	buf = append(buf, rom.raw[:]...)
	buf = append(buf, rom.Trainer...)
	buf = append(buf, rom.PRG...)
	return append(buf, rom.CHR...)
}

// New creates an iNES 1.0 rom. prg must be a multiple of 16k and chr a
// multiple of 8k (chr may be empty, for CHR RAM).
func New(mapper uint8, mirroring Mirroring, battery bool, prg, chr []byte) *Rom {
	rom := &Rom{PRG: prg, CHR: chr}
	copy(rom.raw[:], Magic)
	rom.raw[4] = uint8(len(prg) / prgBankSize)
	rom.raw[5] = uint8(len(chr) / chrBankSize)
	rom.raw[6] = mapper << 4
	rom.raw[7] = mapper & 0xF0
	switch mirroring {
	case Vertical:
		rom.raw[6] |= 0x01
	case FourScreen:
		rom.raw[6] |= 0x08
	}
	if battery {
		rom.raw[6] |= 0x02
	}
	rom.prgsz = len(prg)
	rom.chrsz = len(chr)
	return rom
}

type header struct {
	raw   [headerSize]byte
	prgsz int
	chrsz int
}

func (hdr *header) decode(p []byte) error {
	if len(p) < headerSize {
		return fmt.Errorf("header needs %d bytes, got %d: %w", headerSize, len(p), ErrTruncated)
	}
	if string(p[:4]) != Magic {
		return ErrBadMagic
	}
	copy(hdr.raw[:], p[:headerSize])

	if hdr.IsNES20() {
		// NES 2.0 extends bank counts with the low nibbles of byte 9.
		// Exponent-multiplier notation ($F) isn't supported.
		prgHi, chrHi := int(hdr.raw[9]&0x0F), int(hdr.raw[9]>>4)
		if prgHi == 0x0F || chrHi == 0x0F {
			return fmt.Errorf("NES 2.0 exponent-multiplier rom sizes are not supported")
		}
		hdr.prgsz = (prgHi<<8 | int(hdr.raw[4])) * prgBankSize
		hdr.chrsz = (chrHi<<8 | int(hdr.raw[5])) * chrBankSize
	} else {
		hdr.prgsz = int(hdr.raw[4]) * prgBankSize
		hdr.chrsz = int(hdr.raw[5]) * chrBankSize
	}

	if hdr.prgsz == 0 {
		return ErrNoPRG
	}
	return nil
}

// IsNES20 reports whether the header follows the NES 2.0 format.
func (hdr *header) IsNES20() bool {
	return hdr.raw[7]&0x0C == 0x08
}

// HasTrainer indicates the presence of a trainer section in the rom.
func (hdr *header) HasTrainer() bool {
	return hdr.raw[6]&0x04 != 0
}

// HasBattery indicates the presence of battery-backed PRG RAM.
func (hdr *header) HasBattery() bool {
	return hdr.raw[6]&0x02 != 0
}

// Mirroring returns the hardwired nametable mirroring. Mappers controlling
// mirroring themselves ignore it.
func (hdr *header) Mirroring() Mirroring {
	switch {
	case hdr.raw[6]&0x08 != 0:
		return FourScreen
	case hdr.raw[6]&0x01 != 0:
		return Vertical
	}
	return Horizontal
}

// Mapper returns the mapper number. Byte 7 upper nibble is only trusted on
// NES 2.0 headers or when bytes 12-15 are clean, since old dumping tools
// used to write garbage there ("DiskDude!").
func (hdr *header) Mapper() uint16 {
	lo := uint16(hdr.raw[6] >> 4)
	if !hdr.IsNES20() && hdr.raw[12]|hdr.raw[13]|hdr.raw[14]|hdr.raw[15] != 0 {
		return lo
	}
	mapper := lo | uint16(hdr.raw[7]&0xF0)
	if hdr.IsNES20() {
		mapper |= uint16(hdr.raw[8]&0x0F) << 8
	}
	return mapper
}

// SubMapper returns the NES 2.0 submapper number, 0 for iNES 1.0.
func (hdr *header) SubMapper() uint8 {
	if !hdr.IsNES20() {
		return 0
	}
	return hdr.raw[8] >> 4
}

// PRGRAMSize returns the size of PRG RAM, in bytes.
func (hdr *header) PRGRAMSize() int {
	if hdr.IsNES20() {
		ram := shiftSize(hdr.raw[10] & 0x0F)
		nvram := shiftSize(hdr.raw[10] >> 4)
		if ram+nvram > 0 {
			return ram + nvram
		}
	} else if hdr.raw[8] != 0 {
		return int(hdr.raw[8]) * 8192
	}
	return 8192
}

// CHRRAMSize returns the size of CHR RAM, in bytes, 0 if the cartridge has
// CHR ROM.
func (hdr *header) CHRRAMSize() int {
	if hdr.chrsz != 0 {
		return 0
	}
	if hdr.IsNES20() {
		if sz := shiftSize(hdr.raw[11] & 0x0F); sz > 0 {
			return sz
		}
	}
	return 8192
}

func shiftSize(shift uint8) int {
	if shift == 0 {
		return 0
	}
	return 64 << shift
}

// PRGSize returns the size of PRG ROM, in bytes.
func (hdr *header) PRGSize() int { return hdr.prgsz }

// CHRSize returns the size of CHR ROM, in bytes.
func (hdr *header) CHRSize() int { return hdr.chrsz }

// PrintInfos writes a human readable summary of the header.
func (rom *Rom) PrintInfos(w io.Writer) {
	format := "iNES"
	if rom.IsNES20() {
		format = "NES 2.0"
	}
	fmt.Fprintf(w, "format:     %s\n", format)
	fmt.Fprintf(w, "mapper:     %d (submapper %d)\n", rom.Mapper(), rom.SubMapper())
	fmt.Fprintf(w, "PRG ROM:    %dKB\n", rom.PRGSize()/1024)
	if rom.CHRSize() > 0 {
		fmt.Fprintf(w, "CHR ROM:    %dKB\n", rom.CHRSize()/1024)
	} else {
		fmt.Fprintf(w, "CHR RAM:    %dKB\n", rom.CHRRAMSize()/1024)
	}
	fmt.Fprintf(w, "PRG RAM:    %dKB\n", rom.PRGRAMSize()/1024)
	fmt.Fprintf(w, "mirroring:  %s\n", rom.Mirroring())
	fmt.Fprintf(w, "battery:    %t\n", rom.HasBattery())
	fmt.Fprintf(w, "trainer:    %t\n", rom.HasTrainer())
	fmt.Fprintf(w, "crc32:      %08X\n", rom.CRC32())
}
