package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"golang.org/x/sync/errgroup"

	"nescore/emu"
	"nescore/emu/gamegenie"
	"nescore/emu/log"
	"nescore/emu/movie"
	"nescore/hw"
)

// frame is an emulated frame handed over to the consumer. Its buffers are
// owned by whoever holds it.
type frame struct {
	screen  *image.RGBA
	samples []int16
}

func run(ctx context.Context, cfg emu.Config, args *Run) error {
	data, err := os.ReadFile(args.RomPath)
	if err != nil {
		return err
	}

	con := emu.NewConsole(cfg)
	defer con.Close()
	if err := con.LoadCartridge(data); err != nil {
		return err
	}
	if args.Trace != "" {
		w, err := args.Trace.open()
		if err != nil {
			return err
		}
		defer w.Close()
		con.SetTraceOutput(w)
	}
	if err := setup(con, args); err != nil {
		return err
	}

	// Two frames circulate between the emulation and the consumer.
	free := make(chan *frame, 2)
	for range cap(free) {
		free <- &frame{screen: image.NewRGBA(image.Rect(0, 0, hw.ScreenWidth, hw.ScreenHeight))}
	}
	frames := make(chan *frame)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(frames)
		return emulate(ctx, con, args.Frames, free, frames)
	})
	g.Go(func() error {
		return consume(cfg.Audio.SampleRate, args, free, frames)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return teardown(con, args)
}

// setup applies cheats, battery RAM, savestate and recordings, in that order.
func setup(con *emu.Console, args *Run) error {
	cheats, err := gamegenie.DecodeAll(args.Genie)
	if err != nil {
		return err
	}
	con.SetCheats(cheats)

	if args.Battery != "" {
		buf, err := os.ReadFile(args.Battery)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return err
		default:
			if err := con.LoadBatteryRAM(buf); err != nil {
				return fmt.Errorf("battery file %s: %w", args.Battery, err)
			}
		}
	}

	if args.LoadState != "" {
		buf, err := os.ReadFile(args.LoadState)
		if err != nil {
			return err
		}
		if err := con.LoadState(buf); err != nil {
			return err
		}
	}

	if args.Replay != "" || args.FM2 != "" {
		rec, err := readRecording(args)
		if err != nil {
			return err
		}
		if err := con.LoadRecording(rec); err != nil {
			return err
		}
	}

	if args.Record != "" {
		return con.StartRecording()
	}
	return nil
}

func readRecording(args *Run) (*movie.Recording, error) {
	path := args.Replay
	decode := movie.Decode
	if args.FM2 != "" {
		path = args.FM2
		decode = movie.ParseFM2
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rec, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

func emulate(ctx context.Context, con *emu.Console, nframes int, free <-chan *frame, frames chan<- *frame) error {
	for range nframes {
		var f *frame
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f = <-free:
		}

		screen, samples, err := con.RunFrame(hw.InputState{})
		exhausted := errors.Is(err, emu.ErrRecordingExhausted)
		if err != nil && !exhausted {
			return err
		}

		copy(f.screen.Pix, screen.Pix)
		f.samples = append(f.samples[:0], samples...)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case frames <- f:
		}

		if exhausted {
			log.ModEmu.InfoZ("end of recording").End()
			return nil
		}
	}
	return nil
}

func consume(rate int, args *Run, free chan<- *frame, frames <-chan *frame) error {
	var wavenc *wav.Encoder
	if args.WAV != "" {
		f, err := os.Create(args.WAV)
		if err != nil {
			return err
		}
		defer f.Close()
		wavenc = wav.NewEncoder(f, rate, 16, 2, 1)
	}

	var last *image.RGBA
	if args.Screenshot != "" {
		last = image.NewRGBA(image.Rect(0, 0, hw.ScreenWidth, hw.ScreenHeight))
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: rate},
		SourceBitDepth: 16,
	}
	for f := range frames {
		if wavenc != nil && len(f.samples) > 0 {
			buf.Data = buf.Data[:0]
			for _, s := range f.samples {
				buf.Data = append(buf.Data, int(s))
			}
			if err := wavenc.Write(buf); err != nil {
				return fmt.Errorf("wav: %w", err)
			}
		}
		if last != nil {
			copy(last.Pix, f.screen.Pix)
		}
		free <- f
	}

	if wavenc != nil {
		if err := wavenc.Close(); err != nil {
			return fmt.Errorf("wav: %w", err)
		}
	}
	if last != nil {
		return writePNG(args.Screenshot, last)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// teardown writes the recording, the savestate and the battery RAM.
func teardown(con *emu.Console, args *Run) error {
	if rec := con.StopRecording(); rec != nil {
		f, err := os.Create(args.Record)
		if err != nil {
			return err
		}
		if err := movie.Encode(f, rec); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if args.SaveState != "" {
		buf, err := con.SaveState()
		if err != nil {
			return err
		}
		if err := os.WriteFile(args.SaveState, buf, 0644); err != nil {
			return err
		}
	}

	if args.Battery != "" {
		if ram := con.BatteryRAM(); ram != nil {
			return os.WriteFile(args.Battery, ram, 0644)
		}
	}
	return nil
}
