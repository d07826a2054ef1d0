package gocatena

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/arjunramendra/gocatena/internal/driver"
	_ "github.com/arjunramendra/gocatena/internal/driver/catena" // register drivers
	"github.com/arjunramendra/gocatena/internal/frame"
)

// Result captures the outcome of one decode.
type Result struct {
	Driver    string
	RawHex    string
	ByteCount int
	Port      int
	Fields    map[string]any
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"driver":     r.Driver,
		"port":       r.Port,
		"byte_count": r.ByteCount,
		"raw_hex":    r.RawHex,
	}
	if len(r.Fields) > 0 {
		summary["fields"] = r.Fields
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("driver: %s bytes:%d raw:%s (marshal error: %v)", r.Driver, r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// DecodeHex decodes a hex-encoded uplink received on the given LoRaWAN port.
func DecodeHex(ctx context.Context, raw string, port int) (Result, error) {
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	return DecodeBytes(ctx, data, port)
}

// DecodeBytes selects a driver by port and format selector and returns the
// decoded measurements. An unrecognized port or format yields a result with
// Driver "unknown" and no fields, never an error; only malformed payloads
// for a recognized format fail.
func DecodeBytes(ctx context.Context, data []byte, port int) (Result, error) {
	result := Result{
		Driver:    "unknown",
		RawHex:    strings.ToUpper(hex.EncodeToString(data)),
		ByteCount: len(data),
		Port:      port,
		Fields:    map[string]any{},
	}
	if len(data) == 0 {
		return result, nil
	}
	drv, err := driver.Lookup(driver.Detection{Port: port, Format: data[0]})
	if err != nil {
		return result, nil
	}
	msg, err := frame.Parse(data)
	if err != nil {
		return result, err
	}
	fields, err := drv.Process(ctx, &msg)
	if err != nil {
		return result, err
	}
	result.Driver = drv.Name()
	result.Fields = fields
	return result, nil
}

func decodeHex(input string) ([]byte, error) {
	clean := stripWhitespace(input)
	if strings.HasPrefix(strings.ToUpper(clean), "0X") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex uplink must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripWhitespace(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
