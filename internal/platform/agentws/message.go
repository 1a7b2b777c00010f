package agentws

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// Request types sent by the agent.
const (
	TypeReset = "reset"
	TypeStep  = "step"
	TypeInfo  = "info"
)

// Response types sent by the server.
const (
	TypeObservation = "observation"
	TypeInfoReply   = "info"
	TypeError       = "error"
)

// Request is a message from the agent.
type Request struct {
	Type string       `json:"type"`
	Data *RequestData `json:"data,omitempty"`
}

// RequestData carries the optional fields of a request.
// A step uses either Action or the analog pair X, Y.
type RequestData struct {
	Action *int     `json:"action,omitempty"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Seed   *int64   `json:"seed,omitempty"` // Reset only
}

// Response is a message to the agent.
type Response struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// ErrorMessage is sent when a request cannot be served.
type ErrorMessage struct {
	Message string `json:"message"`
}

// Info describes the environment served on this connection.
type Info struct {
	Session         string   `json:"session"`
	Codec           string   `json:"codec"`
	Reward          string   `json:"reward"`
	Rewards         []string `json:"rewards"`
	Actions         []string `json:"actions"`
	ObservationSize int      `json:"observation_size"`
	MaxTicks        int      `json:"max_ticks"`
	TickRate        int      `json:"tick_rate"`
}

// Codec encodes and decodes websocket frames.
type Codec interface {
	Name() string
	FrameType() int // websocket.TextMessage or websocket.BinaryMessage
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// CodecByName returns the codec for a query value. Empty selects JSON.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "msgpack":
		return MsgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("agentws: unknown codec %q", name)
	}
}

// JSONCodec speaks text frames of JSON.
type JSONCodec struct{}

func (JSONCodec) Name() string   { return "json" }
func (JSONCodec) FrameType() int { return websocket.TextMessage }

func (JSONCodec) Encode(v any) ([]byte, error) { return json.Marshal(v) }

func (JSONCodec) Decode(data []byte, v any) error { return json.Unmarshal(data, v) }

// MsgpackCodec speaks binary frames of MessagePack, reusing the JSON field names.
type MsgpackCodec struct{}

func (MsgpackCodec) Name() string   { return "msgpack" }
func (MsgpackCodec) FrameType() int { return websocket.BinaryMessage }

func (MsgpackCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (MsgpackCodec) Decode(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}
