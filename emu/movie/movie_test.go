package movie

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nescore/hw"
)

func TestNMVRoundTrip(t *testing.T) {
	rec := &Recording{
		CartCRC:    0xDEADBEEF,
		StartState: []byte("NESCSTATE\x1a\x01\x00"),
		Frames: []hw.InputState{
			{},
			{Pads: [2]hw.Buttons{hw.ButtonA | hw.ButtonRight, hw.ButtonStart}},
			{Command: hw.CmdSoftReset},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, rec))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestNMVFormat(t *testing.T) {
	rec := &Recording{
		CartCRC: 42,
		Frames:  []hw.InputState{{Pads: [2]hw.Buttons{1, 2}}, {Command: hw.CmdHardReset}},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, rec))
	assert.JSONEq(t, `{"version":1,"cart_crc":42,"frames":[[1,2],[0,0,2]]}`, buf.String())
}

func TestNMVDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", `hello`},
		{"missing version", `{"cart_crc":1,"frames":[]}`},
		{"bad version", `{"version":2,"cart_crc":1,"frames":[]}`},
		{"short frame", `{"version":1,"frames":[[1]]}`},
		{"long frame", `{"version":1,"frames":[[1,2,3,4]]}`},
		{"bad state", `{"version":1,"start_state":"%%%","frames":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestNMVDecodeUnknownKeys(t *testing.T) {
	rec, err := Decode(strings.NewReader(`{"version":1,"author":{"name":"x"},"frames":[[0,0]]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Len())
	assert.Zero(t, rec.CartCRC)
}

const fm2HeaderText = `version 3
emuVersion 22020
rerecordCount 12
palFlag 0
romFilename smb
romChecksum base64:jjYwGG411HcjG/j9UOVM3Q==
guid 452DE2C3-EF43-2FA9-77AC-0677FC51543B
fourscore 0
microphone 0
port0 1
port1 1
port2 0
FDS 0
NewPPU 0
comment author someone
`

func TestParseFM2(t *testing.T) {
	movie := fm2HeaderText + `|2|........|........||
|0|.......A|........||
|0|R..UT...|..D...B.||

|1|        |        ||
`
	rec, err := ParseFM2(strings.NewReader(movie))
	require.NoError(t, err)

	want := []hw.InputState{
		{Command: hw.CmdHardReset},
		{Pads: [2]hw.Buttons{hw.ButtonA, 0}},
		{Pads: [2]hw.Buttons{hw.ButtonRight | hw.ButtonUp | hw.ButtonStart, hw.ButtonDown | hw.ButtonB}},
		{Command: hw.CmdSoftReset},
	}
	assert.Equal(t, want, rec.Frames)
	assert.Zero(t, rec.CartCRC)
	assert.Empty(t, rec.StartState)
}

func TestParseFM2NoInput(t *testing.T) {
	rec, err := ParseFM2(strings.NewReader(fm2HeaderText))
	require.NoError(t, err)
	assert.Zero(t, rec.Len())
}

func TestParseFM2Errors(t *testing.T) {
	replace := func(old, new string) string {
		return strings.Replace(fm2HeaderText, old, new, 1)
	}

	tests := []struct {
		name  string
		movie string
		want  string
	}{
		{"version", replace("version 3", "version 2"), "invalid version"},
		{"pal", replace("palFlag 0", "palFlag 1"), "PAL not supported"},
		{"fds", replace("FDS 0", "FDS 1"), "FDS not supported"},
		{"fourscore", replace("fourscore 0", "fourscore 1"), "fourscore not supported"},
		{"microphone", replace("microphone 0", "microphone 1"), "microphone not supported"},
		{"binary", fm2HeaderText + "binary 1\n", "binary input log not supported"},
		{"savestate", fm2HeaderText + "savestate base64:AAAA\n", "savestates not supported"},
		{"zapper", replace("port1 1", "port1 2"), "zapper not supported"},
		{"unknown key", fm2HeaderText + "foo bar\n", "unrecognized key"},
		{"missing key", replace("guid 452DE2C3-EF43-2FA9-77AC-0677FC51543B\n", ""), `missing required key "guid"`},
		{"bad value", replace("port0 1", "port0 x"), "not a valid value"},
		{"bad entry", fm2HeaderText + "nospace\n", "not a valid entry"},
		{"bad line", fm2HeaderText + "|0|........|\n", "malformed input line"},
		{"bad command", fm2HeaderText + "|x|........|........||\n", "invalid command"},
		{"bad buttons", fm2HeaderText + "|0|....|........||\n", "malformed buttons"},
		{"port2 input", fm2HeaderText + "|0|........|........|x|\n", "unexpected port2 input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFM2(strings.NewReader(tt.movie))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
