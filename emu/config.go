package emu

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"nescore/emu/log"
	"nescore/hw/apu"
)

type Config struct {
	Emulation EmulationConfig `toml:"emulation"`
	Audio     AudioConfig     `toml:"audio"`
	Video     VideoConfig     `toml:"video"`
}

type EmulationConfig struct {
	// StrictOpcodes makes undocumented CPU opcodes halt the emulation with
	// an ExecutionFault.
	StrictOpcodes bool `toml:"strict_opcodes"`
}

type AudioConfig struct {
	SampleRate   int  `toml:"sample_rate"`
	DisableAudio bool `toml:"disable_audio"`
}

type VideoConfig struct {
	Greyscale bool `toml:"greyscale"`
}

// DefaultConfig returns the configuration used when none is provided.
func DefaultConfig() Config {
	return Config{
		Audio: AudioConfig{SampleRate: apu.DefaultSampleRate},
	}
}

// Check fixes out of range values, logging a warning for each.
func (cfg *Config) Check() {
	if cfg.Audio.SampleRate == 0 {
		cfg.Audio.SampleRate = apu.DefaultSampleRate
	}
	if sr := cfg.Audio.SampleRate; sr < apu.MinSampleRate || sr > apu.MaxSampleRate {
		cfg.Audio.SampleRate = max(apu.MinSampleRate, min(sr, apu.MaxSampleRate))
		log.ModEmu.Warnf("Invalid sample rate %d, using %d", sr, cfg.Audio.SampleRate)
	}
}

// LoadConfig loads the configuration from a TOML file. Missing keys keep
// their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	for _, key := range md.Undecoded() {
		log.ModEmu.Warnf("Unknown config key %q in %s", key.String(), path)
	}
	cfg.Check()
	return cfg, nil
}

// SaveConfig writes cfg to path, in TOML.
func SaveConfig(path string, cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}
