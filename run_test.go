package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/go-audio/wav"

	"nescore/emu"
	"nescore/emu/log"
	"nescore/emu/movie"
	"nescore/hw"
	"nescore/ines"
)

// writeROM writes a 16KB NROM image looping at $8000 to dir.
func writeROM(t *testing.T, dir string) string {
	t.Helper()

	prg := make([]byte, 0x4000)
	copy(prg, []byte{
		0xA9, 0x0F,       // LDA #$0F
		0x8D, 0x15, 0x40, // STA $4015
		0x4C, 0x05, 0x80, // JMP $8005
	})
	prg[0x3FFD] = 0x80
	path := filepath.Join(dir, "test.nes")
	rom := ines.New(0, ines.Vertical, true, prg, nil)
	if err := os.WriteFile(path, rom.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseArgs(t *testing.T) {
	dir := t.TempDir()
	rom := writeROM(t, dir)

	tests := []struct {
		args []string
		want mode
	}{
		{[]string{"version"}, versionMode},
		{[]string{"genie", "SXIOPO", "ZEXPYGLA"}, genieMode},
		{[]string{"rom-infos", rom}, romInfosMode},
		{[]string{"run", rom, "--frames", "3"}, runMode},
	}
	for _, tt := range tests {
		if got := parseArgs(tt.args).mode; got != tt.want {
			t.Errorf("parseArgs(%q).mode = %d, want %d", tt.args, got, tt.want)
		}
	}

	cli := parseArgs([]string{"run", rom, "--frames", "3", "--genie", "SXIOPO", "--genie", "GOSSIP"})
	if cli.Run.Frames != 3 || len(cli.Run.Genie) != 2 {
		t.Errorf("run flags = %+v", cli.Run)
	}
}

func TestLogFlag(t *testing.T) {
	tests := []struct {
		arg     string
		want    logFlag
		wantErr bool
	}{
		{arg: "cpu", want: logFlag{mask: log.ModCPU.Mask()}},
		{arg: "cpu, ppu", want: logFlag{mask: log.ModCPU.Mask() | log.ModPPU.Mask()}},
		{arg: "state,movie", want: logFlag{mask: mustModule(t, "state").Mask() | mustModule(t, "movie").Mask()}},
		{arg: "all", want: logFlag{mask: log.ModuleMaskAll}},
		{arg: "no", want: logFlag{off: true}},
		{arg: "no,cpu", wantErr: true},
		{arg: "gpu", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			var cli struct {
				Log logFlag
			}
			parser, err := kong.New(&cli)
			if err != nil {
				t.Fatal(err)
			}
			_, err = parser.Parse([]string{"--log", tt.arg})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("--log %s: got nil error", tt.arg)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if cli.Log != tt.want {
				t.Errorf("--log %s = %+v, want %+v", tt.arg, cli.Log, tt.want)
			}
		})
	}
}

func mustModule(t *testing.T, name string) log.Module {
	t.Helper()
	mod, ok := log.ModuleByName(name)
	if !ok {
		t.Fatalf("no log module %q", name)
	}
	return mod
}

func TestLogHelpListsModules(t *testing.T) {
	help := logHelp()
	for _, name := range log.ModuleNames() {
		if !strings.Contains(help, name) {
			t.Errorf("log help %q doesn't mention module %q", help, name)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	args := &Run{
		RomPath:    writeROM(t, dir),
		Frames:     10,
		WAV:        filepath.Join(dir, "out.wav"),
		Screenshot: filepath.Join(dir, "out.png"),
		Record:     filepath.Join(dir, "out.nmv"),
		SaveState:  filepath.Join(dir, "out.state"),
		Battery:    filepath.Join(dir, "out.sav"),
		Genie:      []string{"SXIOPO"},
	}
	cfg := emu.DefaultConfig()
	if err := run(context.Background(), cfg, args); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(args.WAV)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatalf("invalid WAV file")
	}
	if dec.SampleRate != uint32(cfg.Audio.SampleRate) || dec.NumChans != 2 || dec.BitDepth != 16 {
		t.Errorf("WAV format = %d Hz, %d channels, %d bits", dec.SampleRate, dec.NumChans, dec.BitDepth)
	}

	buf, err := os.ReadFile(args.Screenshot)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(buf))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != hw.ScreenWidth || b.Dy() != hw.ScreenHeight {
		t.Errorf("screenshot size = %v", b)
	}

	mf, err := os.Open(args.Record)
	if err != nil {
		t.Fatal(err)
	}
	defer mf.Close()
	rec, err := movie.Decode(mf)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Len() != args.Frames {
		t.Errorf("recorded %d frames, want %d", rec.Len(), args.Frames)
	}

	if ram, err := os.ReadFile(args.Battery); err != nil || len(ram) == 0 {
		t.Errorf("battery file: %d bytes, err = %v", len(ram), err)
	}

	// Resume from the savestate and replay the recording.
	replay := &Run{
		RomPath:   args.RomPath,
		Frames:    100,
		LoadState: args.SaveState,
		Replay:    args.Record,
	}
	if err := run(context.Background(), cfg, replay); err != nil {
		t.Fatalf("replay: %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	args := &Run{RomPath: writeROM(t, t.TempDir()), Frames: 1000}
	if err := run(ctx, emu.DefaultConfig(), args); !errors.Is(err, context.Canceled) {
		t.Errorf("run: got %v, want context.Canceled", err)
	}
}
