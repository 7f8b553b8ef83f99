package synth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// ----- Command Input ----- //

// RunCommands reads line-oriented control commands from r and
// enqueues them. Commands:
//
//	select <voice>
//	toggle <voice>
//	freq <hz>
//	vol <0..1>
//
// Unparseable lines are logged and skipped; control input is
// best-effort and must never take the audio down.
func RunCommands(ctx context.Context, r io.Reader, q *Queue) error {
	reader := bufio.NewReader(r)
	var line []byte
loop:
	for {
		select {
		case <-ctx.Done():
			log.Println("RunCommands() interrupted")
			break loop
		default:
		}
		next, isPrefix, err := reader.ReadLine()
		if err == io.EOF {
			break loop
		}
		if err != nil {
			return err
		}
		line = append(line, next...)
		if isPrefix {
			continue
		}
		msg, err := parseCommand(string(line))
		line = line[:0]
		if err != nil {
			log.Printf("bad command: %v", err)
			continue
		}
		if !q.TrySend(msg) {
			log.Printf("control queue full, dropped %v", msg)
		}
	}
	log.Println("RunCommands() ended.")
	return nil
}

func parseCommand(line string) (Message, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Message{}, fmt.Errorf("expected `<command> <value>`, got %q", line)
	}
	switch fields[0] {
	case "select", "toggle":
		index, err := strconv.ParseUint(fields[1], 10, 8)
		if err != nil {
			return Message{}, fmt.Errorf("bad voice index %q: %v", fields[1], err)
		}
		if fields[0] == "select" {
			return SelectVoice(uint8(index)), nil
		}
		return ToggleVoice(uint8(index)), nil
	case "freq":
		hz, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Message{}, fmt.Errorf("bad frequency %q: %v", fields[1], err)
		}
		return SetFrequency(hz), nil
	case "vol":
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Message{}, fmt.Errorf("bad volume %q: %v", fields[1], err)
		}
		return SetVolume(v), nil
	}
	return Message{}, fmt.Errorf("unknown command %q", fields[0])
}
