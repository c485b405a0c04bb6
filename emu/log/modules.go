package log

// Module identifies a subsystem. Warnings and errors are always logged,
// debug and info entries only for modules enabled with EnableDebugModules.
type Module uint

type ModuleMask uint64

const ModuleMaskAll ModuleMask = 1<<64 - 1

// Standard modules. Packages needing their own module create it with
// NewModule, it then shows up in ModuleNames and can be enabled by name.
const (
	ModEmu Module = iota + 1
	ModCPU
	ModMem
	ModHwIo
	ModPPU
	ModInput
	ModSound
	ModDMA
)

var (
	modNames = []string{
		"<error>", "emu", "cpu", "mem", "hwio", "ppu", "input", "sound", "dma",
	}
	debugMask ModuleMask
	disabled  bool
)

// NewModule registers a module. It must be called at init time.
func NewModule(name string) Module {
	modNames = append(modNames, name)
	return Module(len(modNames) - 1)
}

func ModuleByName(name string) (Module, bool) {
	for i := 1; i < len(modNames); i++ {
		if modNames[i] == name {
			return Module(i), true
		}
	}
	return 0, false
}

// ModuleNames returns the names of all registered modules.
func ModuleNames() []string {
	return append([]string(nil), modNames[1:]...)
}

func EnableDebugModules(mask ModuleMask)  { debugMask |= mask }
func DisableDebugModules(mask ModuleMask) { debugMask &^= mask }

// Disable turns off all logging, including warnings and errors.
func Disable() { disabled = true }

func (mod Module) Mask() ModuleMask { return 1 << ModuleMask(mod) }

func (mod Module) String() string {
	if int(mod) < len(modNames) {
		return modNames[mod]
	}
	return modNames[0]
}

func (mod Module) Enabled(level Level) bool {
	if disabled {
		return false
	}
	return level <= WarnLevel || debugMask&mod.Mask() != 0
}

func (mod Module) logz(lvl Level, msg string) *EntryZ {
	if !mod.Enabled(lvl) {
		return nil
	}
	return &EntryZ{lvl: lvl, msg: msg, mod: mod}
}

func (mod Module) DebugZ(msg string) *EntryZ { return mod.logz(DebugLevel, msg) }
func (mod Module) InfoZ(msg string) *EntryZ  { return mod.logz(InfoLevel, msg) }
func (mod Module) WarnZ(msg string) *EntryZ  { return mod.logz(WarnLevel, msg) }
func (mod Module) ErrorZ(msg string) *EntryZ { return mod.logz(ErrorLevel, msg) }
func (mod Module) FatalZ(msg string) *EntryZ { return mod.logz(FatalLevel, msg) }
