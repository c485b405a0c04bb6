package apu

import (
	"reflect"
	"unsafe"

	"github.com/arl/blip"

	"nescore/hw/snapshot"
)

// blip.Buffer doesn't expose its synthesis state (time offset, integrator and
// pending samples), yet a state reload must resume the exact same waveform.
// These fields are accessed by name so that a blip upgrade renaming them
// fails loudly instead of silently corrupting the buffer.
type blipFields struct {
	offset     *uint64
	avail      *int
	integrator *int
	samples    *[]int32
}

func blipInternals(buf *blip.Buffer) blipFields {
	v := reflect.ValueOf(buf).Elem()
	field := func(name string) unsafe.Pointer {
		f := v.FieldByName(name)
		if !f.IsValid() {
			panic("blip.Buffer has no field " + name)
		}
		return unsafe.Pointer(f.UnsafeAddr())
	}
	return blipFields{
		offset:     (*uint64)(field("offset")),
		avail:      (*int)(field("avail")),
		integrator: (*int)(field("integrator")),
		samples:    (*[]int32)(field("samples")),
	}
}

func saveResampler(buf *blip.Buffer, state *snapshot.Resampler) {
	f := blipInternals(buf)
	state.Offset = *f.offset
	state.Avail = int32(*f.avail)
	state.Integrator = int64(*f.integrator)

	// Only the head of the sample buffer holds data, the rest is zeroed.
	samples := *f.samples
	n := len(samples)
	for n > 0 && samples[n-1] == 0 {
		n--
	}
	state.Samples = append(state.Samples[:0], samples[:n]...)
}

func loadResampler(buf *blip.Buffer, state *snapshot.Resampler) {
	f := blipInternals(buf)
	samples := *f.samples
	if len(state.Samples) > len(samples) || int(state.Avail) > len(samples) {
		// Saved from a larger buffer: start from silence.
		buf.Clear()
		return
	}
	*f.offset = state.Offset
	*f.avail = int(state.Avail)
	*f.integrator = int(state.Integrator)
	clear(samples)
	copy(samples, state.Samples)
}
