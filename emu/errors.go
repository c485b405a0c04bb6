package emu

import (
	"errors"
	"fmt"

	"nescore/hw"
)

var (
	// ErrBusy is returned when a savestate operation is attempted while a
	// frame is being emulated.
	ErrBusy = errors.New("console busy")

	// ErrNoCartridge is returned by operations requiring a loaded cartridge.
	ErrNoCartridge = errors.New("no cartridge loaded")

	// ErrRecordingExhausted is returned along with a valid frame, by the
	// first RunFrame following the last recorded frame. Playback then stops.
	ErrRecordingExhausted = errors.New("recording exhausted")

	// ErrWrongCartridge is returned when loading a recording or a savestate
	// made with another cartridge.
	ErrWrongCartridge = errors.New("wrong cartridge")
)

// ExecutionFault is returned by RunFrame when the CPU halts. It's fatal to
// the session until the next reset or state load.
type ExecutionFault = hw.ExecutionFault

// LoadError reports a cartridge image that can't be loaded.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return "load cartridge: " + e.Reason
	}
	return fmt.Sprintf("load cartridge: %s: %v", e.Reason, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// StateError reports a savestate that can't be loaded. The emulation state
// is left untouched.
type StateError struct {
	Reason string
	Err    error
}

func (e *StateError) Error() string {
	if e.Err == nil {
		return "load state: " + e.Reason
	}
	return fmt.Sprintf("load state: %s: %v", e.Reason, e.Err)
}

func (e *StateError) Unwrap() error { return e.Err }
