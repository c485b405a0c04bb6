package log

import "fmt"

// printf-like family. The message is only formatted if the module is enabled
// for the level.

func (mod Module) logf(lvl Level, format string, args ...any) {
	if z := mod.logz(lvl, ""); z != nil {
		z.msg = fmt.Sprintf(format, args...)
		z.End()
	}
}

func (mod Module) Debugf(format string, args ...any) { mod.logf(DebugLevel, format, args...) }
func (mod Module) Infof(format string, args ...any)  { mod.logf(InfoLevel, format, args...) }
func (mod Module) Warnf(format string, args ...any)  { mod.logf(WarnLevel, format, args...) }
func (mod Module) Errorf(format string, args ...any) { mod.logf(ErrorLevel, format, args...) }
func (mod Module) Fatalf(format string, args ...any) { mod.logf(FatalLevel, format, args...) }
