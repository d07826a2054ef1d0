package frame

import (
	"encoding/hex"
	"testing"
)

func TestParse(t *testing.T) {
	raw := decodeHex(t, "140518004200")
	msg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if msg.Format != 0x14 {
		t.Fatalf("format mismatch: 0x%02X", msg.Format)
	}
	if len(msg.Payload) != 5 {
		t.Fatalf("unexpected payload length %d", len(msg.Payload))
	}
	if msg.Payload[0] != 0x05 {
		t.Fatalf("unexpected first payload byte 0x%02X", msg.Payload[0])
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatal("expected error for empty message")
	}
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex decode: %v", err)
	}
	return b
}
