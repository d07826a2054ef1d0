package gocatena

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arjunramendra/gocatena/internal/testutil"
)

func TestCatenaGolden(t *testing.T) {
	fixtures := []struct {
		name   string
		driver string
	}{
		{name: "soilwater", driver: "catena-0x15"},
		{name: "airquality", driver: "catena-0x17"},
		{name: "power", driver: "catena-0x14"},
		{name: "sensor1", driver: "catena-0x11"},
		{name: "unknown", driver: "unknown"},
	}
	for _, tc := range fixtures {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			hexStr := testutil.LoadHex(t, "catena/"+tc.name+".hex")
			result, err := DecodeHex(context.Background(), hexStr, 1)
			require.NoError(t, err)
			require.Equal(t, tc.driver, result.Driver)
			var expected map[string]any
			testutil.LoadJSON(t, "catena/"+tc.name+".json", &expected)
			require.Equal(t, "", diffMaps(expected, result.Fields))
		})
	}
}

func diffMaps(expected, actual map[string]any) string {
	if len(expected) != len(actual) {
		return fmt.Sprintf("len mismatch expected %d actual %d", len(expected), len(actual))
	}
	for k, v := range expected {
		av, ok := actual[k]
		if !ok {
			return fmt.Sprintf("missing key %s", k)
		}
		switch ev := v.(type) {
		case float64:
			avFloat, ok := av.(float64)
			if !ok || math.Abs(ev-avFloat) > 1e-6 {
				return fmt.Sprintf("key %s mismatch expected %v got %v", k, v, av)
			}
		default:
			if fmt.Sprintf("%v", v) != fmt.Sprintf("%v", av) {
				return fmt.Sprintf("key %s mismatch expected %v got %v", k, v, av)
			}
		}
	}
	return ""
}
