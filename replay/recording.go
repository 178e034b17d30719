// Package replay records play sessions and plays them back, either by feeding
// the recorded input through a fresh simulation or by placing the player and
// camera directly at their recorded positions.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/1984drum/2dp-engine/components"
	"github.com/vmihailenco/msgpack/v5"
)

// FormatVersion is bumped whenever Recording changes incompatibly.
const FormatVersion = 1

var ErrVersion = errors.New("unsupported recording version")

// Frame is the state captured at the end of one tick.
type Frame struct {
	Left    bool    `msgpack:"l"`
	Right   bool    `msgpack:"r"`
	Jump    bool    `msgpack:"j"`
	PlayerX float64 `msgpack:"px"`
	PlayerY float64 `msgpack:"py"`
	CameraX float64 `msgpack:"cx"`
	CameraY float64 `msgpack:"cy"`
}

// Input returns the intents that drove the frame's tick.
func (f Frame) Input() components.InputData {
	return components.InputData{Left: f.Left, Right: f.Right, Jump: f.Jump}
}

// Recording is a captured session. Level, Profile and Seed describe how to
// rebuild the simulation the frames were captured from.
type Recording struct {
	Version int     `msgpack:"v"`
	Level   string  `msgpack:"level"`
	Profile string  `msgpack:"profile"`
	Seed    int64   `msgpack:"seed"`
	Frames  []Frame `msgpack:"frames"`
}

// Encode writes rec to w as msgpack.
func Encode(w io.Writer, rec *Recording) error {
	out := *rec
	out.Version = FormatVersion
	if err := msgpack.NewEncoder(w).Encode(&out); err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	return nil
}

// Decode reads a recording written by Encode.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode recording: %w", err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	return &rec, nil
}

// Marshal is Encode into a byte slice.
func Marshal(rec *Recording) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal is Decode from a byte slice.
func Unmarshal(data []byte) (*Recording, error) {
	return Decode(bytes.NewReader(data))
}
