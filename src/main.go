package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vaknin/synth/src/synth"
	"golang.org/x/sync/errgroup"
)

var enableMidi = flag.Bool("midi", false, "take control input from the first MIDI IN port")
var simulate = flag.Bool("simulate", false, "drive the pot inputs from a synthetic sweep")

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	audio, err := synth.NewAudio()
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	defer audio.Close()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(signalCh)
		cancel()
	}()
	go func() {
		sig := <-signalCh
		log.Printf("Caught signal %s: shutting down...\n", sig)
		cancel()
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return audio.Start(ctx)
	})
	g.Go(func() error {
		return synth.RunCommands(ctx, os.Stdin, audio.Queue)
	})
	if *enableMidi {
		g.Go(func() error {
			return synth.RunMidi(ctx, audio.Queue)
		})
	}
	if *simulate {
		g.Go(func() error {
			return synth.RunPots(ctx, audio.Queue, newSweepSource(), newSteadySource(2800))
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("error: %v\n", err)
	}
	log.Printf("status at exit: %+v, dropped messages: %d\n", audio.Status(), audio.Queue.Dropped())
	log.Println("main() ended.")
}

// sweepSource stands in for the frequency pot: a triangle sweep over
// the calibrated range, slow enough that the deadband still matters.
type sweepSource struct {
	pos  float64
	step float64
}

func newSweepSource() *sweepSource {
	return &sweepSource{step: 1.5}
}

func (s *sweepSource) Read() uint16 {
	s.pos += s.step
	if s.pos < 0 {
		s.pos = 0
		s.step = -s.step
	} else if s.pos > 3156 {
		s.pos = 3156
		s.step = -s.step
	}
	return uint16(s.pos)
}

// steadySource stands in for a pot left alone at one position.
type steadySource uint16

func newSteadySource(v uint16) steadySource { return steadySource(v) }

func (s steadySource) Read() uint16 { return uint16(s) }
