package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"nescore/emu"
	"nescore/emu/gamegenie"
	"nescore/ines"
)

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case romInfosMode:
		rom, err := ines.Open(cli.RomInfos.RomPath)
		checkf(err, "failed to open rom")
		rom.PrintInfos(os.Stdout)
	case genieMode:
		for _, code := range cli.Genie.Codes {
			cheat, err := gamegenie.Decode(code)
			checkf(err, "invalid code")
			if cheat.HasCompare {
				fmt.Printf("%s: $%04X = $%02X if $%02X\n", code, cheat.Addr, cheat.Value, cheat.Compare)
			} else {
				fmt.Printf("%s: $%04X = $%02X\n", code, cheat.Addr, cheat.Value)
			}
		}
	case versionMode:
		fmt.Println("nescore", version())
	case runMode:
		cfg := emu.DefaultConfig()
		if cli.Config != "" {
			var err error
			cfg, err = emu.LoadConfig(cli.Config)
			checkf(err, "failed to load configuration")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		checkf(run(ctx, cfg, &cli.Run), "emulation error")
	}
}

func version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "(devel)"
	}
	return bi.Main.Version
}
