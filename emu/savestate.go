package emu

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/tinylib/msgp/msgp"

	"nescore/emu/log"
	"nescore/hw/snapshot"
)

var modState = log.NewModule("state")

const stateMagic = "NESCSTATE\x1a"

// Savestate header: magic, format version, cartridge CRC32, payload CRC32.
const stateHeaderSize = len(stateMagic) + 2 + 4 + 4

// SaveState serializes the whole emulation state. It returns ErrBusy if
// called while a frame is being emulated.
func (c *Console) SaveState() ([]byte, error) {
	if c.nes == nil {
		return nil, ErrNoCartridge
	}
	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer c.busy.Store(false)

	return c.encodeState()
}

func (c *Console) encodeState() ([]byte, error) {
	state := c.nes.State()
	var payload bytes.Buffer
	payload.Grow(state.Msgsize())
	w := msgp.NewWriter(&payload)
	if err := state.EncodeMsg(w); err != nil {
		return nil, &StateError{Reason: "encoding failed", Err: err}
	}
	if err := w.Flush(); err != nil {
		return nil, &StateError{Reason: "encoding failed", Err: err}
	}

	buf := make([]byte, stateHeaderSize, stateHeaderSize+payload.Len())
	n := copy(buf, stateMagic)
	binary.LittleEndian.PutUint16(buf[n:], snapshot.Version)
	binary.LittleEndian.PutUint32(buf[n+2:], c.nes.Cart.CRC32())
	binary.LittleEndian.PutUint32(buf[n+6:], crc32.ChecksumIEEE(payload.Bytes()))
	buf = append(buf, payload.Bytes()...)

	modState.DebugZ("state saved").Int("size", len(buf)).End()
	return buf, nil
}

// LoadState restores a state produced by SaveState. The state is fully
// decoded and checked before being applied: on error, the emulation state
// is left untouched.
//
// Loading a state stops playback. While recording, the recording restarts
// from the loaded state.
func (c *Console) LoadState(data []byte) error {
	if c.nes == nil {
		return ErrNoCartridge
	}
	if !c.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer c.busy.Store(false)

	if err := c.decodeState(data); err != nil {
		return err
	}
	c.playback = nil
	c.pendingCmd = 0
	if c.recording != nil {
		c.recording.StartState = append([]byte(nil), data...)
		c.recording.Frames = c.recording.Frames[:0]
	}
	return nil
}

func (c *Console) decodeState(data []byte) error {
	if len(data) < stateHeaderSize || string(data[:len(stateMagic)]) != stateMagic {
		return &StateError{Reason: "not a savestate"}
	}
	hdr := data[len(stateMagic):stateHeaderSize]
	payload := data[stateHeaderSize:]

	if v := binary.LittleEndian.Uint16(hdr); v != snapshot.Version {
		return &StateError{Reason: fmt.Sprintf("unsupported version %d", v)}
	}
	if crc := binary.LittleEndian.Uint32(hdr[2:]); crc != c.nes.Cart.CRC32() {
		return &StateError{
			Reason: fmt.Sprintf("cartridge mismatch (state %08x, loaded %08x)", crc, c.nes.Cart.CRC32()),
			Err:    ErrWrongCartridge,
		}
	}
	if crc := binary.LittleEndian.Uint32(hdr[6:]); crc != crc32.ChecksumIEEE(payload) {
		return &StateError{Reason: "checksum mismatch"}
	}

	state := new(snapshot.NES)
	if err := state.DecodeMsg(msgp.NewReader(bytes.NewReader(payload))); err != nil {
		return &StateError{Reason: "malformed payload", Err: err}
	}
	if err := c.nes.ValidateState(state); err != nil {
		return &StateError{Reason: "inconsistent state", Err: err}
	}

	c.nes.SetState(state)
	modState.DebugZ("state loaded").Uint64("frame", state.Frame).End()
	return nil
}
