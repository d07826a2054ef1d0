package catena

import (
	"github.com/arjunramendra/gocatena/internal/codec"
)

// fieldGroup ties one flag bit to the decoder for its field group. Layout
// tables list groups in ascending flag order, matching the byte order the
// boards transmit them in.
type fieldGroup struct {
	flag   byte
	name   string
	decode func(*codec.Reader, map[string]any) error
}

// Format 0x11 predates the boot counter and reads its main and one-wire
// temperatures without sign extension. That matches the transmitters in the
// field, so it stays unsigned here even though negative temperatures wrap.
var layout11 = []fieldGroup{
	{0x01, "vBat", decodeVBat},
	{0x02, "vBus", decodeVBus},
	{0x04, "climate", decodeClimate(false)},
	{0x08, "lux", decodeLux},
	{0x10, "water", decodeWater(false)},
	{0x20, "soil", decodeSoil},
}

var layout14 = []fieldGroup{
	{0x01, "vBat", decodeVBat},
	{0x02, "vBus", decodeVBus},
	{0x04, "boot", decodeBoot},
	{0x08, "climate", decodeClimate(true)},
	{0x10, "lux", decodeLux},
	{0x20, "power-count", decodePowerCounts},
	{0x40, "power-rate", decodePowerRates},
}

var layout15 = []fieldGroup{
	{0x01, "vBat", decodeVBat},
	{0x02, "vBus", decodeVBus},
	{0x04, "boot", decodeBoot},
	{0x08, "climate", decodeClimate(true)},
	{0x10, "lux", decodeLux},
	{0x20, "water", decodeWater(true)},
	{0x40, "soil", decodeSoil},
}

var layout17 = []fieldGroup{
	{0x01, "vBat", decodeVBat},
	{0x02, "vBus", decodeVBus},
	{0x04, "boot", decodeBoot},
	{0x08, "climate", decodeClimate(true)},
	{0x10, "lux", decodeLux},
	{0x20, "aqi", decodeAirQuality},
}

func decodeVBat(r *codec.Reader, fields map[string]any) error {
	raw, err := r.Int16()
	if err != nil {
		return err
	}
	fields["vBat"] = float64(raw) / 4096.0
	return nil
}

func decodeVBus(r *codec.Reader, fields map[string]any) error {
	raw, err := r.Int16()
	if err != nil {
		return err
	}
	fields["vBus"] = float64(raw) / 4096.0
	return nil
}

func decodeBoot(r *codec.Reader, fields map[string]any) error {
	raw, err := r.Uint8()
	if err != nil {
		return err
	}
	fields["boot"] = float64(raw)
	return nil
}

// decodeClimate handles the combined temperature/pressure/humidity group
// from the on-board environmental sensor. Pressure arrives pre-divided by 4.
func decodeClimate(signedTemp bool) func(*codec.Reader, map[string]any) error {
	return func(r *codec.Reader, fields map[string]any) error {
		t, err := readTemp(r, signedTemp)
		if err != nil {
			return err
		}
		p, err := r.Uint16()
		if err != nil {
			return err
		}
		rawRH, err := r.Uint8()
		if err != nil {
			return err
		}
		rh := float64(rawRH) / 256.0 * 100
		fields["tempC"] = t
		fields["p"] = float64(p) * 4 / 100.0
		fields["rh"] = rh
		fields["tDewC"] = Dewpoint(t, rh)
		fields["error"] = statusLiteralNone
		return nil
	}
}

func decodeLux(r *codec.Reader, fields map[string]any) error {
	raw, err := r.Uint16()
	if err != nil {
		return err
	}
	fields["lux"] = float64(raw)
	return nil
}

func decodeWater(signedTemp bool) func(*codec.Reader, map[string]any) error {
	return func(r *codec.Reader, fields map[string]any) error {
		t, err := readTemp(r, signedTemp)
		if err != nil {
			return err
		}
		fields["tWater"] = t
		return nil
	}
}

func decodeSoil(r *codec.Reader, fields map[string]any) error {
	t, err := readTemp(r, true)
	if err != nil {
		return err
	}
	rawRH, err := r.Uint8()
	if err != nil {
		return err
	}
	rh := float64(rawRH) / 256.0 * 100
	fields["tSoil"] = t
	fields["rhSoil"] = rh
	fields["tSoilDew"] = Dewpoint(t, rh)
	return nil
}

func decodePowerCounts(r *codec.Reader, fields map[string]any) error {
	used, err := r.Uint16()
	if err != nil {
		return err
	}
	sourced, err := r.Uint16()
	if err != nil {
		return err
	}
	fields["powerUsedCount"] = float64(used)
	fields["powerSourcedCount"] = float64(sourced)
	return nil
}

// decodePowerRates converts the per-quarter-second mini-float pulse rates to
// pulses per hour.
func decodePowerRates(r *codec.Reader, fields map[string]any) error {
	used, err := r.MiniFloat16()
	if err != nil {
		return err
	}
	sourced, err := r.MiniFloat16()
	if err != nil {
		return err
	}
	fields["powerUsedPerHour"] = used * 3600 * 4
	fields["powerSourcedPerHour"] = sourced * 3600 * 4
	return nil
}

func decodeAirQuality(r *codec.Reader, fields map[string]any) error {
	raw, err := r.MiniFloat16()
	if err != nil {
		return err
	}
	fields["aqi"] = raw * 512
	return nil
}

func readTemp(r *codec.Reader, signed bool) (float64, error) {
	if signed {
		raw, err := r.Int16()
		if err != nil {
			return 0, err
		}
		return float64(raw) / 256.0, nil
	}
	raw, err := r.Uint16()
	if err != nil {
		return 0, err
	}
	return float64(raw) / 256.0, nil
}
