package frame

import (
	"fmt"
)

// Message is a Catena uplink stripped of transport details: the leading
// format selector byte plus the bytes that follow it. The flags byte and the
// fields themselves are format specific and left to the drivers.
type Message struct {
	Raw     []byte
	Format  byte
	Payload []byte
}

// Parse splits a raw uplink into selector and payload.
func Parse(raw []byte) (Message, error) {
	if len(raw) < 1 {
		return Message{}, fmt.Errorf("message too short: %d bytes", len(raw))
	}
	return Message{
		Raw:     raw,
		Format:  raw[0],
		Payload: raw[1:],
	}, nil
}
