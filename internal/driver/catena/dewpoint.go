package catena

import "math"

// Magnus approximation constants over water.
const (
	magnusC1 = 243.04
	magnusC2 = 17.625
)

// Dewpoint returns the dew point in degrees C for a temperature t (degrees C)
// and relative humidity rh (percent), using the Magnus approximation.
// Humidity is clamped to [1%, 100%] before taking the logarithm.
func Dewpoint(t, rh float64) float64 {
	h := rh / 100
	if h < 0.01 {
		h = 0.01
	}
	if h > 1.0 {
		h = 1.0
	}
	gamma := math.Log(h) + t*magnusC2/(t+magnusC1)
	return magnusC1 * gamma / (magnusC2 - gamma)
}
