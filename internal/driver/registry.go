package driver

import (
	"context"
	"fmt"
	"sync"

	"github.com/arjunramendra/gocatena/internal/frame"
)

// Detection contains minimal information required to identify a driver.
type Detection struct {
	Port   int
	Format byte
}

// Driver processes messages once selected.
type Driver interface {
	Name() string
	Process(context.Context, *frame.Message) (map[string]any, error)
}

var (
	regMu    sync.RWMutex
	registry []registeredDriver
)

type registeredDriver struct {
	detect Detection
	driver Driver
}

// Register stores a driver/detection pair in memory.
func Register(det Detection, drv Driver) {
	regMu.Lock()
	defer regMu.Unlock()
	registry = append(registry, registeredDriver{detect: det, driver: drv})
}

// Lookup returns the first driver that matches the detection key.
func Lookup(det Detection) (Driver, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	for _, rd := range registry {
		if rd.detect.Port == det.Port && rd.detect.Format == det.Format {
			return rd.driver, nil
		}
	}
	return nil, fmt.Errorf("driver not found for port %d format 0x%02X", det.Port, det.Format)
}
