package hwdefs

import "testing"

func TestNTAddr(t *testing.T) {
	tests := []struct {
		m    NTMirroring
		addr uint16
		want uint16
	}{
		{HorizontalMirroring, 0x2000, 0x000},
		{HorizontalMirroring, 0x2400, 0x000},
		{HorizontalMirroring, 0x2800, 0x400},
		{HorizontalMirroring, 0x2C05, 0x405},
		{VerticalMirroring, 0x2400, 0x400},
		{VerticalMirroring, 0x2800, 0x000},
		{VerticalMirroring, 0x2C10, 0x410},
		{OnlyAScreen, 0x2C10, 0x010},
		{OnlyBScreen, 0x2010, 0x410},
		{FourScreen, 0x2C10, 0xC10},
		{VerticalMirroring, 0x3400, 0x400}, // $3000-$3EFF mirrors $2000-$2EFF
	}
	for _, tt := range tests {
		if got := tt.m.NTAddr(tt.addr); got != tt.want {
			t.Errorf("%s.NTAddr(%04x) = %03x, want %03x", tt.m, tt.addr, got, tt.want)
		}
	}
}

func TestIRQSourceString(t *testing.T) {
	if got := (External | DMC).String(); got != "ext|dmc" {
		t.Errorf("String() = %q, want %q", got, "ext|dmc")
	}
}
