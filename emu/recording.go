package emu

import (
	"nescore/emu/log"
	"nescore/emu/movie"
	"nescore/hw"
	"nescore/hw/hwdefs"
)

// StartRecording starts capturing the input of every frame emulated from
// now on. The recording starts from a savestate of the current state. Any
// playback in progress is stopped.
func (c *Console) StartRecording() error {
	if c.nes == nil {
		return ErrNoCartridge
	}
	if !c.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer c.busy.Store(false)

	start, err := c.encodeState()
	if err != nil {
		return err
	}
	c.playback = nil
	c.recording = &movie.Recording{
		CartCRC:    c.nes.Cart.CRC32(),
		StartState: start,
	}
	log.ModEmu.InfoZ("recording started").End()
	return nil
}

// StopRecording ends the recording in progress and returns it, nil if
// there's none.
func (c *Console) StopRecording() *movie.Recording {
	rec := c.recording
	c.recording = nil
	if rec != nil {
		log.ModEmu.InfoZ("recording stopped").Int("frames", rec.Len()).End()
	}
	return rec
}

// Recording reports whether a recording is in progress.
func (c *Console) Recording() bool { return c.recording != nil }

// LoadRecording starts the playback of rec. The console is first put in the
// state the recording starts from: its start state, or power-up. From then
// on, RunFrame uses the recorded input until the recording is exhausted.
func (c *Console) LoadRecording(rec *movie.Recording) error {
	if c.nes == nil {
		return ErrNoCartridge
	}
	if !c.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer c.busy.Store(false)

	if rec.CartCRC != 0 && rec.CartCRC != c.nes.Cart.CRC32() {
		return ErrWrongCartridge
	}
	if len(rec.StartState) != 0 {
		if err := c.decodeState(rec.StartState); err != nil {
			return err
		}
	} else {
		c.nes.Reset(hwdefs.HardReset)
	}

	c.recording = nil
	c.playback = rec
	c.playPos = 0
	c.pendingCmd = 0
	log.ModEmu.InfoZ("playback started").Int("frames", rec.Len()).End()
	return nil
}

// Playing reports whether a recording is being played back.
func (c *Console) Playing() bool { return c.playback != nil }

// nextInput returns the input to use for the next frame. During playback,
// that's the recorded input; exhausted is set once the recording has no
// more frames, in which case playback stops.
func (c *Console) nextInput(in hw.InputState) (_ hw.InputState, exhausted bool) {
	if c.playback == nil {
		return in, false
	}
	if c.playPos >= c.playback.Len() {
		log.ModEmu.InfoZ("playback ended").Int("frames", c.playPos).End()
		c.playback = nil
		return hw.InputState{}, true
	}
	in = c.playback.Frames[c.playPos]
	c.playPos++
	return in, false
}
