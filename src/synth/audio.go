package synth

import (
	"context"
	"io"
	"log"

	"github.com/hajimehoshi/oto"
)

// ----- Audio ----- //

// Audio owns the output device and the render loop. It exposes the
// engine as an io.Reader so the oto player can pull PCM from it one
// buffer at a time; that pull cadence is the deadline the engine
// renders under.
type Audio struct {
	ctx        context.Context
	otoContext *oto.Context
	engine     *Engine

	// Queue is where every control adapter enqueues its messages.
	Queue *Queue
}

var _ io.Reader = (*Audio)(nil)

// NewAudio ...
func NewAudio() (*Audio, error) {
	otoContext, err := oto.NewContext(sampleRate, channelNum, bitDepthInBytes, bufferSizeInBytes)
	if err != nil {
		return nil, err
	}
	queue := NewQueue(messageQueueSize)
	engine, err := NewEngine(sampleRate, queue)
	if err != nil {
		otoContext.Close()
		return nil, err
	}
	return &Audio{
		ctx:        context.Background(),
		otoContext: otoContext,
		engine:     engine,
		Queue:      queue,
	}, nil
}

// Read renders the next buffer of PCM. The oto player calls this once
// per buffer-fill cycle; everything inside has to finish well within
// bufferSize/sampleRate seconds and never block on the queue.
func (a *Audio) Read(buf []byte) (int, error) {
	select {
	case <-a.ctx.Done():
		log.Println("Read() interrupted.")
		return 0, io.EOF
	default:
		return a.engine.Render(buf), nil
	}
}

// Start pumps the engine into the player until ctx is cancelled.
func (a *Audio) Start(ctx context.Context) error {
	p := a.otoContext.NewPlayer()
	defer func() {
		if err := p.Close(); err != nil {
			log.Printf("error: %v", err)
		}
	}()
	a.ctx = ctx

	// block until cancel() called
	if _, err := io.CopyBuffer(p, a, make([]byte, bufferSizeInBytes)); err != nil {
		return err
	}
	log.Println("Start() ended.")
	return nil
}

// Status snapshots the engine. Only meaningful once Start has
// returned; the render loop owns the engine while it runs.
func (a *Audio) Status() EngineStatus {
	return a.engine.Status()
}

// Close ...
func (a *Audio) Close() error {
	log.Println("Closing Audio...")
	return a.otoContext.Close()
}
