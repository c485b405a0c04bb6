package mappers

import (
	"fmt"

	"nescore/hw/snapshot"
)

// State returns a snapshot of the cartridge RAM and mapper registers.
func (c *Cartridge) State() *snapshot.Cartridge {
	state := &snapshot.Cartridge{
		Kind:   uint16(c.Kind),
		PRGRAM: append([]uint8(nil), c.PRGRAM...),
		Latch:  c.discrete.Latch,
		MMC1: snapshot.MMC1{
			Shift:     c.mmc1.Shift,
			Counter:   c.mmc1.Counter,
			Control:   c.mmc1.Control,
			CHR0:      c.mmc1.CHR0,
			CHR1:      c.mmc1.CHR1,
			PRG:       c.mmc1.PRG,
			LastWrite: c.mmc1.LastWrite,
		},
		MMC3: snapshot.MMC3{
			BankSelect: c.mmc3.BankSelect,
			Banks:      c.mmc3.Banks,
			Mirroring:  c.mmc3.Mirroring,
			RAMProtect: c.mmc3.RAMProtect,
			IRQLatch:   c.mmc3.IRQLatch,
			IRQCounter: c.mmc3.IRQCounter,
			IRQReload:  c.mmc3.IRQReload,
			IRQEnabled: c.mmc3.IRQEnabled,
			IRQPending: c.mmc3.IRQPending,
			A12High:    c.mmc3.A12High,
			A12LowAt:   c.mmc3.A12LowAt,
		},
	}
	if c.chrRAM {
		state.CHRRAM = append([]uint8(nil), c.CHR...)
	}
	return state
}

// ValidateState checks that state has been taken from a cartridge of the
// same board, without modifying c.
func (c *Cartridge) ValidateState(state *snapshot.Cartridge) error {
	if Kind(state.Kind) != c.Kind {
		return fmt.Errorf("mapper mismatch: state is %s, cartridge is %s", Kind(state.Kind), c.Kind)
	}
	if len(state.PRGRAM) != len(c.PRGRAM) {
		return fmt.Errorf("PRG RAM size mismatch: got %d bytes, want %d", len(state.PRGRAM), len(c.PRGRAM))
	}
	if c.chrRAM && len(state.CHRRAM) != len(c.CHR) {
		return fmt.Errorf("CHR RAM size mismatch: got %d bytes, want %d", len(state.CHRRAM), len(c.CHR))
	}
	if !c.chrRAM && len(state.CHRRAM) != 0 {
		return fmt.Errorf("unexpected CHR RAM in state")
	}
	return nil
}

// SetState restores a snapshot previously validated with ValidateState.
func (c *Cartridge) SetState(state *snapshot.Cartridge) {
	copy(c.PRGRAM, state.PRGRAM)
	if c.chrRAM {
		copy(c.CHR, state.CHRRAM)
	}

	c.discrete.Latch = state.Latch
	c.mmc1 = MMC1State{
		Shift:     state.MMC1.Shift,
		Counter:   state.MMC1.Counter,
		Control:   state.MMC1.Control,
		CHR0:      state.MMC1.CHR0,
		CHR1:      state.MMC1.CHR1,
		PRG:       state.MMC1.PRG,
		LastWrite: state.MMC1.LastWrite,
	}
	c.mmc3 = MMC3State{
		BankSelect: state.MMC3.BankSelect,
		Banks:      state.MMC3.Banks,
		Mirroring:  state.MMC3.Mirroring,
		RAMProtect: state.MMC3.RAMProtect,
		IRQLatch:   state.MMC3.IRQLatch,
		IRQCounter: state.MMC3.IRQCounter,
		IRQReload:  state.MMC3.IRQReload,
		IRQEnabled: state.MMC3.IRQEnabled,
		IRQPending: state.MMC3.IRQPending,
		A12High:    state.MMC3.A12High,
		A12LowAt:   state.MMC3.A12LowAt,
	}

	// Bank maps, mirroring and RAM access are derived from the registers.
	c.mirroring = c.hwMirroring
	c.prgRAMEnabled = true
	c.prgRAMWritable = true
	switch c.Kind {
	case NROM, UxROM, CNROM, AxROM, GxROM:
		c.remapDiscrete()
	case MMC1:
		c.remapMMC1()
	case MMC3:
		c.remapMMC3()
	}
}
