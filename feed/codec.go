package feed

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/lanesim/engine"
)

// Format selects the wire encoding of a client's frames
type Format uint8

const (
	FormatMsgpack Format = iota // binary frames, default
	FormatJSON                  // text frames
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "msgpack"
}

// ParseFormat maps the ?format= query value, empty selects msgpack
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "msgpack":
		return FormatMsgpack, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// messageType is the websocket frame type carrying f
func (f Format) messageType() int {
	if f == FormatJSON {
		return websocket.TextMessage
	}
	return websocket.BinaryMessage
}

// Encode serializes a snapshot in format f
func Encode(f Format, snap engine.Snapshot) ([]byte, error) {
	if f == FormatJSON {
		return json.Marshal(snap)
	}
	return msgpack.Marshal(snap)
}

// Decode is the client-side inverse of Encode
func Decode(f Format, data []byte, snap *engine.Snapshot) error {
	if f == FormatJSON {
		return json.Unmarshal(data, snap)
	}
	return msgpack.Unmarshal(data, snap)
}

// frame is one encoded snapshot in both formats, encoded lazily once per publish
type frame struct {
	snap    engine.Snapshot
	encoded [2][]byte
}

func (fr *frame) bytes(f Format) ([]byte, error) {
	if fr.encoded[f] != nil {
		return fr.encoded[f], nil
	}
	data, err := Encode(f, fr.snap)
	if err != nil {
		return nil, err
	}
	fr.encoded[f] = data
	return data, nil
}
