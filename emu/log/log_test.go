package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gopkg.in/Sirupsen/logrus.v0"
)

type frameContext struct{ frame int }

func (c *frameContext) AddLogContext(z *EntryZ) { z.Int("frame", c.frame) }

func TestEntryZ(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})

	mod := NewModule("logtest")

	// Debug is filtered until the module is enabled.
	mod.DebugZ("hidden").Hex8("val", 0x12).End()
	if buf.Len() != 0 {
		t.Fatalf("disabled module logged: %q", buf.String())
	}

	EnableDebugModules(mod.Mask())
	defer DisableDebugModules(mod.Mask())

	ctx := &frameContext{frame: 42}
	AddContext(ctx)
	defer RemoveContext(ctx)

	mod.DebugZ("shown").
		Hex16("addr", 0x2002).
		Hex8("val", 0x80).
		Error("err", errors.New("boom")).
		End()

	out := buf.String()
	for _, want := range []string{"shown", "addr=2002", "val=80", "err=boom", "frame=42", "_mod=logtest"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q doesn't contain %q", out, want)
		}
	}
}

func TestNilEntryZ(t *testing.T) {
	var z *EntryZ
	// Must not panic.
	z.Hex8("a", 1).String("b", "c").Bool("d", true).End()
}

func TestModuleByName(t *testing.T) {
	mod, ok := ModuleByName("ppu")
	if !ok || mod != ModPPU {
		t.Errorf("ModuleByName(ppu) = %v, %t, want %v, true", mod, ok, ModPPU)
	}
	if _, ok := ModuleByName("<error>"); ok {
		t.Errorf("ModuleByName(<error>) should fail")
	}

	names := ModuleNames()
	if names[0] != "emu" {
		t.Errorf("ModuleNames()[0] = %q, want emu", names[0])
	}
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})

	mod := NewModule("printftest")
	mod.Infof("filtered %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("info logged for a disabled module: %q", buf.String())
	}

	// Warnings are always shown.
	mod.Warnf("bad sample rate %d", 12)
	out := buf.String()
	for _, want := range []string{"bad sample rate 12", "_mod=printftest", "level=warning"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q doesn't contain %q", out, want)
		}
	}
}

func TestFieldValue(t *testing.T) {
	var z EntryZ
	z.Hex8("h8", 0x0A).Hex32("h32", 0xBEEF).Int("neg", -3).Uint8("u", 200).Bool("b", true).Stringer("mod", ModPPU)

	want := []string{"0a", "0000beef", "-3", "200", "true", "ppu"}
	for i, w := range want {
		if got := z.fields[i].Value(); got != w {
			t.Errorf("field %s = %q, want %q", z.fields[i].Key, got, w)
		}
	}
}
