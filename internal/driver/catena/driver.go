package catena

import (
	"context"
	"fmt"

	"github.com/arjunramendra/gocatena/internal/codec"
	"github.com/arjunramendra/gocatena/internal/driver"
	"github.com/arjunramendra/gocatena/internal/frame"
)

// Message formats emitted on port 1 by the Catena board family.
const (
	FormatSensor1     = 0x11 // Catena 4410 field sensor
	FormatGeneral     = 0x14 // Catena 4450 power monitor
	FormatSoilWater   = 0x15 // Catena 4450 with one-wire and soil probes
	FormatAirQuality  = 0x17 // Catena 4460 with BME680 air quality
	uplinkPort        = 1
	statusLiteralNone = "none"
)

func init() {
	for _, reg := range []struct {
		format byte
		layout []fieldGroup
	}{
		{FormatSensor1, layout11},
		{FormatGeneral, layout14},
		{FormatSoilWater, layout15},
		{FormatAirQuality, layout17},
	} {
		driver.Register(driver.Detection{
			Port:   uplinkPort,
			Format: reg.format,
		}, Driver{format: reg.format, layout: reg.layout})
	}
}

// Driver decodes one port-1 message format. The four formats share the same
// shape: a one-byte flags field followed by the field groups whose flag bits
// are set, in ascending bit order.
type Driver struct {
	format byte
	layout []fieldGroup
}

// Name returns the canonical driver name.
func (d Driver) Name() string { return fmt.Sprintf("catena-0x%02x", d.format) }

// Process walks the layout table and decodes every flagged field group.
func (d Driver) Process(_ context.Context, msg *frame.Message) (map[string]any, error) {
	if msg.Format != d.format {
		return nil, fmt.Errorf("catena-0x%02x: unexpected format byte 0x%02X", d.format, msg.Format)
	}
	r := codec.NewReader(msg.Payload)
	flags, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("catena-0x%02x: read flags: %w", d.format, err)
	}
	fields := make(map[string]any)
	for _, group := range d.layout {
		if flags&group.flag == 0 {
			continue
		}
		if err := group.decode(r, fields); err != nil {
			return nil, fmt.Errorf("catena-0x%02x: %s group: %w", d.format, group.name, err)
		}
	}
	return fields, nil
}
