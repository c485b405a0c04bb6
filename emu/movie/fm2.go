package movie

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"nescore/hw"
)

// Input devices of FM2 port0 and port1 keys.
const (
	fm2None    = 0
	fm2Gamepad = 1
	fm2Zapper  = 2
)

// FM2 input commands, only resets are supported.
const fm2Commands = hw.CmdSoftReset | hw.CmdHardReset

type fm2Header struct {
	version    int
	emuVersion int
	fourscore  bool
	ports      [3]int
	romFile    string
	guid       string
	romSum     string
}

// ParseFM2 imports a movie in FCEUX text format (version 3). PAL, FDS,
// four score, microphone, zapper, binary and savestate-anchored movies are
// not supported. The returned recording starts from power-up and has no
// cartridge CRC (FM2 uses an MD5 of the ROM).
func ParseFM2(r io.Reader) (*Recording, error) {
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 4096), 1<<20)

	hdr, line, err := parseFM2Header(scan)
	if err != nil {
		return nil, fmt.Errorf("fm2: %w", err)
	}

	modMovie.InfoZ("importing FM2 movie").
		String("rom", hdr.romFile).
		String("guid", hdr.guid).
		String("checksum", hdr.romSum).
		Int("emuVersion", hdr.emuVersion).
		End()

	rec := &Recording{}
	for more := line != ""; more; more = scan.Scan() {
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		f, err := parseFM2Frame(line)
		if err != nil {
			return nil, fmt.Errorf("fm2: frame %d: %w", len(rec.Frames), err)
		}
		rec.Frames = append(rec.Frames, f)
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("fm2: %w", err)
	}
	return rec, nil
}

// parseFM2Header parses the key/value lines up to the first input line,
// which is returned (empty if there's none). The scanner is left on it.
func parseFM2Header(scan *bufio.Scanner) (hdr *fm2Header, first string, err error) {
	hdr = &fm2Header{}
	seen := map[string]bool{}

	flag := func(key, val string) (bool, error) {
		n, err := strconv.ParseUint(val, 10, 8)
		if err != nil {
			return false, fmt.Errorf("%q is not a valid value for key %q", val, key)
		}
		return n != 0, nil
	}
	number := func(key, val string) (int, error) {
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("%q is not a valid value for key %q", val, key)
		}
		return n, nil
	}

	for scan.Scan() {
		line := scan.Text()
		if strings.HasPrefix(line, "|") {
			first = line
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, val, ok := strings.Cut(line, " ")
		if !ok {
			return nil, "", fmt.Errorf("%q is not a valid entry", line)
		}
		seen[key] = true

		var on bool
		switch key {
		case "version":
			hdr.version, err = number(key, val)
		case "emuVersion":
			hdr.emuVersion, err = number(key, val)
		case "rerecordCount", "length":
			_, err = number(key, val)
		case "palFlag":
			if on, err = flag(key, val); on {
				return nil, "", fmt.Errorf("PAL not supported")
			}
		case "NewPPU":
			_, err = flag(key, val)
		case "FDS":
			if on, err = flag(key, val); on {
				return nil, "", fmt.Errorf("FDS not supported")
			}
		case "fourscore":
			if hdr.fourscore, err = flag(key, val); hdr.fourscore {
				return nil, "", fmt.Errorf("fourscore not supported")
			}
		case "microphone":
			if on, err = flag(key, val); on {
				return nil, "", fmt.Errorf("microphone not supported")
			}
		case "binary":
			if on, err = flag(key, val); on {
				return nil, "", fmt.Errorf("binary input log not supported")
			}
		case "port0", "port1", "port2":
			port := int(key[4] - '0')
			if hdr.ports[port], err = number(key, val); err != nil {
				break
			}
			switch dev := hdr.ports[port]; {
			case port == 2 && dev != fm2None:
				return nil, "", fmt.Errorf("invalid port device %d", dev)
			case dev == fm2Zapper:
				return nil, "", fmt.Errorf("zapper not supported")
			case dev != fm2None && dev != fm2Gamepad:
				return nil, "", fmt.Errorf("invalid input device %d", dev)
			}
		case "romFilename":
			hdr.romFile = val
		case "guid":
			hdr.guid = val
		case "romChecksum":
			hdr.romSum = val
		case "savestate":
			return nil, "", fmt.Errorf("savestates not supported")
		case "comment", "subtitle":
		default:
			return nil, "", fmt.Errorf("unrecognized key %q", key)
		}
		if err != nil {
			return nil, "", err
		}
	}
	if err := scan.Err(); err != nil {
		return nil, "", err
	}

	for _, key := range []string{"version", "emuVersion", "fourscore", "port0", "port1", "port2", "romFilename", "guid", "romChecksum"} {
		if !seen[key] {
			return nil, "", fmt.Errorf("missing required key %q", key)
		}
	}
	if hdr.version != 3 {
		return nil, "", fmt.Errorf("invalid version number %d", hdr.version)
	}
	return hdr, first, nil
}

// parseFM2Frame parses an input line: |command|port0|port1|port2|
func parseFM2Frame(line string) (hw.InputState, error) {
	var f hw.InputState

	fields := strings.Split(line, "|")
	if len(fields) < 6 || fields[0] != "" {
		return f, fmt.Errorf("malformed input line %q", line)
	}
	if fields[4] != "" {
		return f, fmt.Errorf("unexpected port2 input %q", fields[4])
	}

	cmd, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil {
		return f, fmt.Errorf("invalid command %q", fields[1])
	}
	if hw.Command(cmd)&^fm2Commands != 0 {
		modMovie.WarnZ("ignoring unsupported FM2 command").Uint8("cmd", uint8(cmd)).End()
	}
	f.Command = hw.Command(cmd) & fm2Commands

	for i := range f.Pads {
		pad := fields[2+i]
		if pad == "" {
			continue
		}
		if f.Pads[i], err = hw.ParseButtons(pad); err != nil {
			return f, err
		}
	}
	return f, nil
}
