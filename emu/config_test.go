package emu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/hw/apu"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nescore.toml")
	err := os.WriteFile(path, []byte(`
[emulation]
strict_opcodes = true

[audio]
sample_rate = 1000000

[video]
greyscale = true
unknown = 3
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Emulation: EmulationConfig{StrictOpcodes: true},
		Audio:     AudioConfig{SampleRate: apu.MaxSampleRate},
		Video:     VideoConfig{Greyscale: true},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nescore.toml")
	if err := os.WriteFile(path, []byte("[audio]\ndisable_audio = true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Audio.DisableAudio = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("LoadConfig of a missing file succeeded")
	}

	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[audio\nsample_rate = "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("LoadConfig of a malformed file succeeded")
	}
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nescore.toml")
	cfg := DefaultConfig()
	cfg.Audio.SampleRate = 48000
	cfg.Video.Greyscale = true

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}
