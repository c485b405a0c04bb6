package hw

import (
	"fmt"

	"nescore/emu/log"
	"nescore/hw/snapshot"
)

// Buttons is the state of the 8 buttons of a standard controller, one bit per
// button, in the order they're shifted out ($4016/$4017 reads).
type Buttons uint8

const (
	ButtonA Buttons = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// fm2Letters are the button letters in FM2 order, from bit 7 to bit 0.
const fm2Letters = "RLDUTSBA"

// String returns the buttons in FM2 notation: "RLDUTSBA", with a '.' for each
// released button.
func (b Buttons) String() string {
	var buf [8]byte
	for i := range buf {
		if b&(0x80>>i) != 0 {
			buf[i] = fm2Letters[i]
		} else {
			buf[i] = '.'
		}
	}
	return string(buf[:])
}

// ParseButtons parses buttons in FM2 notation. Any character other than '.'
// or ' ' marks a pressed button.
func ParseButtons(s string) (Buttons, error) {
	if len(s) != len(fm2Letters) {
		return 0, fmt.Errorf("malformed buttons %q: want %d characters", s, len(fm2Letters))
	}

	var b Buttons
	for i := range len(s) {
		if s[i] != '.' && s[i] != ' ' {
			b |= 0x80 >> i
		}
	}
	return b, nil
}

// Command is a console-level action performed before a frame.
type Command uint8

const (
	CmdSoftReset Command = 1 << iota
	CmdHardReset
)

// InputState is the input of a single frame.
type InputState struct {
	Pads    [2]Buttons
	Command Command
}

type controller struct {
	buttons Buttons
	shift   uint8
}

// InputPorts handles $4016 (strobe and port 1) and $4017 (port 2) for 2
// standard controllers.
type InputPorts struct {
	strobe bool
	pads   [2]controller
}

// setButtons sets the buttons state, as seen by the next controller latch.
func (ip *InputPorts) setButtons(pads [2]Buttons) {
	ip.pads[0].buttons = pads[0]
	ip.pads[1].buttons = pads[1]
	if ip.strobe {
		ip.reload()
	}
}

func (ip *InputPorts) reload() {
	ip.pads[0].shift = uint8(ip.pads[0].buttons)
	ip.pads[1].shift = uint8(ip.pads[1].buttons)
}

// $4016
func (ip *InputPorts) write(val uint8) {
	prev := ip.strobe
	ip.strobe = val&1 == 1
	if ip.strobe || prev {
		ip.reload()
	}
	log.ModInput.DebugZ("write strobe").Bool("strobe", ip.strobe).End()
}

// read returns the next bit (bit 0) of the given port, the upper bits are
// left to the caller (open bus).
func (ip *InputPorts) read(port int) uint8 {
	if ip.strobe {
		ip.reload()
	}

	pad := &ip.pads[port]
	ret := pad.shift & 1

	// After 8 bits are read, all subsequent bits will report 1 on a standard
	// NES controller.
	pad.shift = pad.shift>>1 | 0x80
	return ret
}

func (ip *InputPorts) peek(port int) uint8 {
	if ip.strobe {
		return uint8(ip.pads[port].buttons) & 1
	}
	return ip.pads[port].shift & 1
}

func (ip *InputPorts) reset() {
	*ip = InputPorts{}
}

func (ip *InputPorts) saveState(state *snapshot.Input) {
	state.Strobe = ip.strobe
	for i := range ip.pads {
		state.Pads[i] = snapshot.Controller{
			Buttons: uint8(ip.pads[i].buttons),
			Shift:   ip.pads[i].shift,
		}
	}
}

func (ip *InputPorts) setState(state *snapshot.Input) {
	ip.strobe = state.Strobe
	for i := range ip.pads {
		ip.pads[i] = controller{
			buttons: Buttons(state.Pads[i].Buttons),
			shift:   state.Pads[i].Shift,
		}
	}
}
