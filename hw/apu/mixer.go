package apu

import (
	"slices"

	"github.com/arl/blip"

	"nescore/hw/hwdefs"
	"nescore/hw/snapshot"
)

const (
	DefaultSampleRate = 44100
	MinSampleRate     = 8000
	MaxSampleRate     = 96000

	// NumChannels is the number of interleaved channels in an AudioBuffer.
	NumChannels = 2
)

// x4 to allow some slack on long frames, x2 for stereo.
const maxSamplesPerFrame = MaxSampleRate / 60 * 4 * 2

// Length, in CPU cycles, of the mixer timeline. The APU flushes it before
// it's full.
const cycleLength = 10000

const ntscCPUClock = 1789773

// AudioBuffer holds interleaved stereo 16-bit signed samples.
type AudioBuffer []int16

// Frames returns the number of sample frames (left/right pairs).
func (b AudioBuffer) Frames() int { return len(b) / NumChannels }

// Mixer combines channel outputs with the non-linear NES mixing formulas and
// resamples the result from the CPU clock to the output sample rate.
//
// Channels report level changes (deltas) timestamped in CPU cycles. At the
// end of the timeline, the mixed output is computed at each timestamp and
// fed to band-limited synthesis buffers, one per stereo side.
type Mixer struct {
	left, right *blip.Buffer
	lastL       int16 // last mixed value fed to left
	lastR       int16

	// stereo is set when a channel is panned: the right side is then
	// synthesized separately instead of duplicating the left one.
	stereo bool
	muted  bool

	volumes [hwdefs.NumAudioChannels]float64
	panning [hwdefs.NumAudioChannels]float64

	stamps []uint32
	deltas [hwdefs.NumAudioChannels][cycleLength]int16
	levels [hwdefs.NumAudioChannels]int16

	sampleRate int
	tmp        [maxSamplesPerFrame]int16
	out        AudioBuffer
}

// NewMixer creates a mixer outputting at the given sample rate, clamped to
// [MinSampleRate, MaxSampleRate].
func NewMixer(sampleRate int) *Mixer {
	m := &Mixer{
		left:       blip.NewBuffer(maxSamplesPerFrame),
		right:      blip.NewBuffer(maxSamplesPerFrame),
		sampleRate: max(MinSampleRate, min(sampleRate, MaxSampleRate)),
	}
	for ch := range hwdefs.NumAudioChannels {
		m.volumes[ch] = 1
		m.panning[ch] = 1
	}
	m.Reset()
	return m
}

func (m *Mixer) SampleRate() int { return m.sampleRate }

// SetMuted disables sample generation, Samples then always returns an empty
// buffer.
func (m *Mixer) SetMuted(muted bool) { m.muted = muted }

// SetVolume sets the volume of a channel, from 0 (silent) to 1.
func (m *Mixer) SetVolume(ch Channel, vol float64) {
	m.volumes[ch] = max(0, min(vol, 1))
}

// SetPanning sets the stereo position of a channel, from 0 (left) to 2
// (right), 1 being centered.
func (m *Mixer) SetPanning(ch Channel, pan float64) {
	m.panning[ch] = max(0, min(pan, 2))

	stereo := slices.ContainsFunc(m.panning[:], func(p float64) bool { return p != 1 })
	if stereo && !m.stereo {
		m.left.Clear()
		m.right.Clear()
	}
	m.stereo = stereo
}

func (m *Mixer) Reset() {
	m.left.Clear()
	m.right.Clear()
	m.left.SetRates(ntscCPUClock, float64(m.sampleRate))
	m.right.SetRates(ntscCPUClock, float64(m.sampleRate))
	m.lastL, m.lastR = 0, 0

	m.stamps = m.stamps[:0]
	for ch := range m.deltas {
		clear(m.deltas[ch][:])
	}
	clear(m.levels[:])
	m.out = m.out[:0]
}

// level returns the level of ch, scaled by its volume and its panning toward
// the given side.
func (m *Mixer) level(ch Channel, right bool) float64 {
	pan := m.panning[ch]
	if !right {
		pan = 2 - pan
	}
	return float64(m.levels[ch]) * m.volumes[ch] * pan
}

// mix applies the non-linear mixing formulas of the 2A03 DACs.
func (m *Mixer) mix(right bool) int16 {
	pulses := m.level(Square1, right) + m.level(Square2, right)
	tnd := 2.7516713261*m.level(Triangle, right) +
		1.8493587125*m.level(Noise, right) +
		m.level(DPCM, right)

	pulseOut := uint16(95.88 * 5000 / (8128/pulses + 100))
	tndOut := uint16(159.79 * 5000 / (22638/tnd + 100))
	return int16(pulseOut + tndOut)
}

// AddDelta records a change of the output of channel ch at the given cycle
// of the current mixer timeline.
func (m *Mixer) AddDelta(ch Channel, time uint32, delta int16) {
	if delta == 0 {
		return
	}
	m.stamps = append(m.stamps, time)
	m.deltas[ch][time] += delta
}

// endFrame closes the timeline at cycle time and converts it to samples.
func (m *Mixer) endFrame(time uint32) {
	slices.Sort(m.stamps)
	m.stamps = slices.Compact(m.stamps)

	for _, t := range m.stamps {
		for ch := range m.levels {
			m.levels[ch] += m.deltas[ch][t]
		}

		out := m.mix(false) * 4
		m.left.AddDelta(uint64(t), int32(out-m.lastL))
		m.lastL = out

		if m.stereo {
			out = m.mix(true) * 4
			m.right.AddDelta(uint64(t), int32(out-m.lastR))
			m.lastR = out
		}
	}

	m.left.EndFrame(int(time))
	if m.stereo {
		m.right.EndFrame(int(time))
	}

	m.stamps = m.stamps[:0]
	for ch := range m.deltas {
		clear(m.deltas[ch][:])
	}

	m.readSamples()
}

func (m *Mixer) readSamples() {
	buf := m.tmp[:]
	n := m.left.ReadSamples(buf, maxSamplesPerFrame/2, blip.Stereo)
	if m.stereo {
		m.right.ReadSamples(buf[1:], maxSamplesPerFrame/2, blip.Stereo)
	} else {
		for i := 0; i < 2*n; i += 2 {
			buf[i+1] = buf[i]
		}
	}

	if !m.muted {
		m.out = append(m.out, buf[:2*n]...)
	}
}

// Samples returns the samples produced since the previous call. The returned
// buffer is reused by the mixer, it's only valid until the next frame.
func (m *Mixer) Samples() AudioBuffer {
	buf := m.out
	m.out = m.out[:0]
	return buf
}

func (m *Mixer) saveState(state *snapshot.APUMixer) {
	state.LastLeft = m.lastL
	state.LastRight = m.lastR
	state.Levels = m.levels
	saveResampler(m.left, &state.Left)
	saveResampler(m.right, &state.Right)
}

func (m *Mixer) setState(state *snapshot.APUMixer) {
	m.Reset()
	m.lastL = state.LastLeft
	m.lastR = state.LastRight
	m.levels = state.Levels
	loadResampler(m.left, &state.Left)
	loadResampler(m.right, &state.Right)
}
