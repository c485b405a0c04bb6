package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"nescore/emu/log"
)

type mode byte

const (
	runMode      mode = iota // Run a ROM headlessly
	romInfosMode             // Show ROM infos
	genieMode                // Decode Game Genie codes
	versionMode              // Show version
)

type (
	CLI struct {
		Run      Run      `cmd:"" help:"Run ROM in emulator, without display."`
		RomInfos RomInfos `cmd:"" help:"Show ROM infos." name:"rom-infos"`
		Genie    Genie    `cmd:"" help:"Decode Game Genie codes."`
		Version  Version  `cmd:"" help:"Show nescore version."`

		Log    logFlag `help:"${log_help}" placeholder:"MOD,..."`
		Config string  `name:"config" help:"${config_help}" type:"existingfile" placeholder:"FILE"`

		mode mode
	}

	Run struct {
		RomPath string `arg:"" name:"/path/to/rom" help:"ROM to run." type:"existingfile"`

		Frames     int       `name:"frames" help:"Number of frames to emulate." default:"600"`
		WAV        string    `name:"wav" help:"Write audio output to a WAV file." type:"path" placeholder:"FILE"`
		Screenshot string    `name:"screenshot" help:"Write the last frame to a PNG file." type:"path" placeholder:"FILE"`
		Record     string    `name:"record" help:"Record input to a movie file." type:"path" placeholder:"FILE"`
		Replay     string    `name:"replay" help:"Play back a movie file." type:"existingfile" placeholder:"FILE" xor:"replay"`
		FM2        string    `name:"fm2" help:"Play back an FCEUX movie file." type:"existingfile" placeholder:"FILE" xor:"replay"`
		Genie      []string  `name:"genie" help:"Enable Game Genie codes." placeholder:"CODE"`
		LoadState  string    `name:"load-state" help:"Load a savestate before running." type:"existingfile" placeholder:"FILE"`
		SaveState  string    `name:"save-state" help:"Write a savestate after running." type:"path" placeholder:"FILE"`
		Battery    string    `name:"battery" help:"${battery_help}" type:"path" placeholder:"FILE"`
		Trace      traceDest `name:"trace" help:"Write CPU trace log." placeholder:"FILE|stdout|stderr"`
	}

	RomInfos struct {
		RomPath string `arg:"" name:"/path/to/rom" type:"existingfile"`
	}

	Genie struct {
		Codes []string `arg:"" name:"code" help:"6 or 8 letter codes."`
	}

	Version struct{}
)

var vars = kong.Vars{
	"config_help":  "Load configuration from TOML file.",
	"battery_help": "Battery RAM file, loaded if it exists and written back after running.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("nescore"),
		kong.Description("NES emulator core."),
		kong.UsageOnError(),
		vars,
		kong.Vars{"log_help": logHelp()})
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	cfg.Log.apply()

	switch strings.Fields(ctx.Command())[0] {
	case "rom-infos":
		cfg.mode = romInfosMode
	case "genie":
		cfg.mode = genieMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = runMode
	}
	return cfg
}

// logFlag selects the modules logging at debug level. "all" selects them
// all, "no" silences logging altogether.
type logFlag struct {
	mask log.ModuleMask
	off  bool
}

// Decode implements kong.MapperValue.
func (lf *logFlag) Decode(ctx *kong.DecodeContext) error {
	var list string
	if err := ctx.Scan.PopValueInto("modules", &list); err != nil {
		return err
	}
	for _, name := range strings.Split(list, ",") {
		switch name = strings.TrimSpace(name); name {
		case "all":
			lf.mask = log.ModuleMaskAll
		case "no":
			lf.off = true
		default:
			mod, ok := log.ModuleByName(name)
			if !ok {
				return fmt.Errorf("unknown log module %q", name)
			}
			lf.mask |= mod.Mask()
		}
	}
	if lf.off && lf.mask != 0 {
		return errors.New("'no' can't be combined with other log modules")
	}
	return nil
}

func (lf logFlag) apply() {
	if lf.off {
		log.Disable()
		return
	}
	log.EnableDebugModules(lf.mask)
}

// traceDest is where the CPU trace goes: a file path, stdout or stderr.
type traceDest string

func (d traceDest) open() (io.WriteCloser, error) {
	switch d {
	case "stdout":
		return nopCloser{os.Stdout}, nil
	case "stderr":
		return nopCloser{os.Stderr}, nil
	}
	return os.Create(string(d))
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func logHelp() string {
	return "Enable debug logs of the given modules (" + strings.Join(log.ModuleNames(), ", ") +
		"). 'all' enables every module, 'no' disables all logging."
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
