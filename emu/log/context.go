package log

// A Context adds fields to every log entry, for example the current frame and
// cycle of the running emulation.
type Context interface {
	AddLogContext(z *EntryZ)
}

var contexts []Context

// AddContext registers c. Contexts are called in registration order.
func AddContext(c Context) {
	contexts = append(contexts, c)
}

// RemoveContext unregisters c.
func RemoveContext(c Context) {
	for i := range contexts {
		if contexts[i] == c {
			contexts = append(contexts[:i], contexts[i+1:]...)
			return
		}
	}
}
