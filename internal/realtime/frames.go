package realtime

import (
	"encoding/json"
	"errors"
	"strings"
)

const (
	FrameJoinEvent   = "join-event"
	FrameJoined      = "joined"
	FrameStepUpdated = "step-updated"
	FrameError       = "error"

	CodeInvalidArgument = "INVALID_ARGUMENT"
)

// Frame is the envelope of every websocket message in both directions.
type Frame struct {
	Type      string          `json:"type"`
	RequestID string          `json:"requestId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JoinPayload accepts {"slug":"..."} as well as a bare JSON string.
type JoinPayload struct {
	Slug string `json:"slug"`
}

func (p *JoinPayload) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		p.Slug = strings.TrimSpace(bare)
		return nil
	}
	type plain JoinPayload
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.New("payload must be a slug string or an object with a slug")
	}
	p.Slug = strings.TrimSpace(obj.Slug)
	return nil
}

type JoinedPayload struct {
	Slug string `json:"slug"`
}

// NewFrame marshals payload into a frame of the given type.
func NewFrame(frameType, requestID string, payload any) (Frame, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Type: frameType, RequestID: requestID, Payload: raw}, nil
}

func errorFrame(requestID, code, message string) Frame {
	frame, _ := NewFrame(FrameError, requestID, ErrorPayload{Code: code, Message: message})
	return frame
}
