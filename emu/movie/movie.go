// Package movie implements input recordings: the per-frame input of a play
// session, from power-up or from a savestate, and their file formats.
package movie

import (
	"nescore/emu/log"
	"nescore/hw"
)

var modMovie = log.NewModule("movie")

// Recording is the input of a play session, one entry per frame.
type Recording struct {
	// CartCRC identifies the cartridge the recording has been made with.
	// Zero means unknown (imported recordings), it's then not checked.
	CartCRC uint32

	// StartState is the savestate the recording starts from. When empty,
	// the recording starts from power-up.
	StartState []byte

	Frames []hw.InputState
}

// Len returns the number of frames.
func (r *Recording) Len() int { return len(r.Frames) }
