package hw

import (
	"testing"

	"nescore/hw/snapshot"
)

func TestButtonsString(t *testing.T) {
	tests := []struct {
		b    Buttons
		want string
	}{
		{0, "........"},
		{ButtonA, ".......A"},
		{ButtonRight | ButtonStart, "R...T..."},
		{0xFF, "RLDUTSBA"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("Buttons(%#02x).String() = %q, want %q", uint8(tt.b), got, tt.want)
		}
		got, err := ParseButtons(tt.want)
		if err != nil {
			t.Fatalf("ParseButtons(%q): %v", tt.want, err)
		}
		if got != tt.b {
			t.Errorf("ParseButtons(%q) = %#02x, want %#02x", tt.want, uint8(got), uint8(tt.b))
		}
	}
}

func TestParseButtonsLenient(t *testing.T) {
	got, err := ParseButtons("  x.. ..")
	if err != nil {
		t.Fatal(err)
	}
	if got != ButtonDown {
		t.Errorf("got %v, want %v", got, ButtonDown)
	}

	if _, err := ParseButtons("RLDU"); err == nil {
		t.Errorf("ParseButtons accepted a short string")
	}
}

func TestInputPortsSerial(t *testing.T) {
	var ip InputPorts
	ip.setButtons([2]Buttons{ButtonA | ButtonStart | ButtonRight, ButtonB})

	ip.write(1)
	ip.write(0)

	var got1, got2 [10]uint8
	for i := range got1 {
		got1[i] = ip.read(0)
		got2[i] = ip.read(1)
	}

	want1 := [10]uint8{1, 0, 0, 1, 0, 0, 0, 1, 1, 1}
	want2 := [10]uint8{0, 1, 0, 0, 0, 0, 0, 0, 1, 1}
	if got1 != want1 {
		t.Errorf("port 1 bits = %v, want %v", got1, want1)
	}
	if got2 != want2 {
		t.Errorf("port 2 bits = %v, want %v", got2, want2)
	}
}

func TestInputPortsStrobeHigh(t *testing.T) {
	var ip InputPorts
	ip.setButtons([2]Buttons{ButtonA, 0})
	ip.write(1)

	// While strobe is high, reads keep returning the state of A.
	for i := range 4 {
		if got := ip.read(0); got != 1 {
			t.Fatalf("read %d = %d, want 1", i, got)
		}
	}

	ip.setButtons([2]Buttons{0, 0})
	if got := ip.read(0); got != 0 {
		t.Errorf("read = %d after release, want 0", got)
	}
}

func TestInputPortsState(t *testing.T) {
	var ip InputPorts
	ip.setButtons([2]Buttons{ButtonSelect | ButtonUp, ButtonLeft})
	ip.write(1)
	ip.write(0)
	ip.read(0)
	ip.read(0)

	var state snapshot.Input
	ip.saveState(&state)

	var restored InputPorts
	restored.setState(&state)
	for i := range 8 {
		want, got := ip.read(0), restored.read(0)
		if got != want {
			t.Errorf("read %d after restore = %d, want %d", i, got, want)
		}
	}
	if got, want := restored.read(1), uint8(0); got != want {
		t.Errorf("port 2 read after restore = %d, want %d", got, want)
	}
}
